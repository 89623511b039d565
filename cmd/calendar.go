package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"streakbot/internal/cli"
	"streakbot/internal/model"
	"streakbot/internal/render"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYYMM]",
	Short: "Print the habit calendar for a month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, args []string) error {
	c, st, cfg, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	now := time.Now()
	year, month := now.Year(), now.Month()
	if len(args) == 1 {
		year, month, err = model.ParseMonthKey(args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q, want YYYYMM: %w", args[0], err)
		}
	}

	v := render.Month(year, month, c.Stats(), c.Habits(), cfg.Tracking.FloorDay(), now)

	fmt.Println()
	fmt.Print(cli.RenderMonth(v))
	return nil
}
