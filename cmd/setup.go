package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"streakbot/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	token := cfg.Telegram.Token
	dbPath := cfg.Database.Path
	floorDate := cfg.Tracking.FloorDate
	threshold := strconv.Itoa(cfg.Tracking.SuccessThreshold)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Telegram bot token").
				Description("From @BotFather. Leave blank to use STREAKBOT_TOKEN.").
				EchoMode(huh.EchoModePassword).
				Value(&token),

			huh.NewInput().
				Title("Database path").
				Description("Leave blank for the XDG default.").
				Placeholder(config.DefaultDBPath()).
				Value(&dbPath),

			huh.NewInput().
				Title("Tracking floor date").
				Description("Earliest day shown on the calendar (YYYYMMDD).").
				Validate(func(s string) error {
					if _, err := time.ParseInLocation("20060102", s, time.Local); err != nil {
						return fmt.Errorf("want YYYYMMDD, e.g. 20250927")
					}
					return nil
				}).
				Value(&floorDate),

			huh.NewInput().
				Title("Success threshold").
				Description("Days of best streak before a habit counts as formed.").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("want a positive number")
					}
					return nil
				}).
				Value(&threshold),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	cfg.Telegram.Token = token
	cfg.Database.Path = dbPath
	cfg.Tracking.FloorDate = floorDate
	cfg.Tracking.SuccessThreshold, _ = strconv.Atoi(threshold)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `streakbot setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
