package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"streakbot/internal/bot"
	"streakbot/internal/cache"
	"streakbot/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Telegram bot",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	c, st, cfg, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	token := config.GetToken(cfg)
	if token == "" {
		return errors.New("no bot token configured: run `streakbot setup` or set STREAKBOT_TOKEN")
	}

	b, err := bot.New(token, c, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	syncer := cache.NewSyncer(c, cache.SyncerConfig{
		CheckInterval: cfg.Sync.CheckEvery(),
		FlushInterval: cfg.Sync.FlushEvery(),
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		syncer.Run(ctx)
	}()

	fmt.Printf("  streakbot polling (flush every %s)\n", cfg.Sync.FlushEvery())
	fmt.Printf("  Stop with Ctrl-C\n")

	err = b.Run(ctx)

	// Wait for the syncer's final flush before closing the store.
	wg.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
