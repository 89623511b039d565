package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Force a cache flush to the database",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	c, st, _, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := c.SyncToStore(); err != nil {
		return fmt.Errorf("flushing cache: %w", err)
	}

	habits, stats, err := st.Counts()
	if err != nil {
		return fmt.Errorf("counting rows: %w", err)
	}

	fmt.Printf("  Synced %d habits and %d stat rows.\n", habits, stats)
	return nil
}
