package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"streakbot/internal/cache"
	"streakbot/internal/config"
	"streakbot/internal/store"
)

var flagDB string

var rootCmd = &cobra.Command{
	Use:   "streakbot",
	Short: "Habit tracker with a Telegram calendar UI",
	Long:  "Track daily habits: streaks, gold weeks, and an inline calendar served over Telegram or the terminal.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default from config)")
}

// openCache is the shared startup path: load config, open the store,
// and hydrate a cache from it. The caller owns closing the store.
func openCache() (*cache.Cache, *store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cfg, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	st, err := store.Open(dbPath, cfg.Tracking.FloorDate)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("opening store: %w", err)
	}

	c := cache.New(st)
	if err := c.LoadFromStore(); err != nil {
		_ = st.Close()
		return nil, nil, cfg, fmt.Errorf("hydrating cache: %w", err)
	}

	return c, st, cfg, nil
}
