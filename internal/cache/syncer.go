package cache

import (
	"context"
	"log"
	"time"
)

// SyncerConfig controls the background checkpoint cadence.
type SyncerConfig struct {
	CheckInterval time.Duration // how often the loop wakes
	FlushInterval time.Duration // minimum gap between successful flushes
}

// Syncer periodically flushes the cache to the store. It is a
// best-effort checkpoint: a failed cycle is logged and the loop keeps
// its normal cadence.
type Syncer struct {
	cache *Cache
	cfg   SyncerConfig
}

// NewSyncer returns a syncer with sane defaults filled in.
func NewSyncer(c *Cache, cfg SyncerConfig) *Syncer {
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = time.Minute
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Hour
	}
	return &Syncer{cache: c, cfg: cfg}
}

// Run wakes every CheckInterval and flushes the cache when at least
// FlushInterval has passed since the last successful sync. On ctx
// cancellation it performs one final best-effort flush and returns.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := s.cache.SyncToStore(); err != nil {
				log.Printf("streakbot: final sync failed: %v", err)
			}
			return
		case <-ticker.C:
			s.tick(time.Now())
		}
	}
}

func (s *Syncer) tick(now time.Time) {
	if now.Sub(s.cache.LastSync()) < s.cfg.FlushInterval {
		return
	}
	if err := s.cache.SyncToStore(); err != nil {
		log.Printf("streakbot: periodic sync failed: %v", err)
		return
	}
	log.Printf("streakbot: cache synced to store")
}
