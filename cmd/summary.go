package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"streakbot/internal/cli"
	"streakbot/internal/render"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show current and best streaks per habit",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	c, st, cfg, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	items := render.Summary(c.Stats(), c.Habits(), cfg.Tracking.FloorDay(), time.Now())
	if len(items) == 0 {
		fmt.Println("\n  No habits yet. Add one from the bot or the TUI.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.SummaryTable(items, cfg.Tracking.SuccessThreshold)))
	fmt.Println()
	return nil
}
