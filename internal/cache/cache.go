// Package cache holds the in-memory authoritative copy of habits and
// daily statuses, reconciled with the durable store by full-snapshot
// sync. It is the only shared mutable state in the process.
package cache

import (
	"strconv"
	"sync"
	"time"

	"streakbot/internal/model"
)

// Store is the durable collaborator the cache syncs against. Both
// operations move the entire data set: LoadAll reads everything,
// ReplaceAll atomically swaps the store contents for the given
// snapshot (nothing is committed on failure).
type Store interface {
	LoadAll() (map[string]model.Habit, map[string]map[string]bool, error)
	ReplaceAll(habits map[string]model.Habit, stats map[string]map[string]bool) error
}

// Cache is a mutex-guarded mapping of habits and per-day statuses.
// Readers get snapshot copies, never live aliases, so render paths can
// work on their copy without holding the lock.
type Cache struct {
	store Store

	mu       sync.Mutex
	habits   map[string]model.Habit
	stats    map[string]map[string]bool // day key -> habit id -> done
	lastSync time.Time
}

// New returns an empty cache bound to the given store. Callers
// normally hydrate it immediately with LoadFromStore.
func New(store Store) *Cache {
	return &Cache{
		store:  store,
		habits: make(map[string]model.Habit),
		stats:  make(map[string]map[string]bool),
	}
}

// Habits returns a snapshot copy of the habit mapping.
func (c *Cache) Habits() map[string]model.Habit {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]model.Habit, len(c.habits))
	for id, h := range c.habits {
		out[id] = h
	}
	return out
}

// Stats returns a deep snapshot copy of the day -> habit -> status mapping.
func (c *Cache) Stats() map[string]map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyStats(c.stats)
}

// AddHabit inserts or overwrites a habit. It does not persist; the
// next sync checkpoint picks it up.
func (c *Cache) AddHabit(h model.Habit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.habits[h.ID] = h
}

// NextHabitID returns the next sequential id. Ids are assigned by
// count at creation time and never reused (deletion is unsupported).
func (c *Cache) NextHabitID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strconv.Itoa(len(c.habits) + 1)
}

// SetStat records a status for one habit on one day, creating the day
// bucket if absent.
func (c *Cache) SetStat(day, habitID string, done bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats[day] == nil {
		c.stats[day] = make(map[string]bool)
	}
	c.stats[day][habitID] = done
}

// Toggle flips the status for one habit on one day and returns the new
// value. A missing record counts as false, so the first toggle marks
// the habit done.
func (c *Cache) Toggle(day, habitID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats[day] == nil {
		c.stats[day] = make(map[string]bool)
	}
	next := !c.stats[day][habitID]
	c.stats[day][habitID] = next
	return next
}

// LoadFromStore replaces the entire cache content with what the store
// currently holds. Unflushed in-memory edits are lost; callers decide
// whether that is acceptable.
func (c *Cache) LoadFromStore() error {
	habits, stats, err := c.store.LoadAll()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.habits = habits
	c.stats = stats
	c.mu.Unlock()
	return nil
}

// SyncToStore persists the whole cache as one snapshot. The store keeps
// its prior contents on failure; lastSync advances only after success.
func (c *Cache) SyncToStore() error {
	c.mu.Lock()
	habits := make(map[string]model.Habit, len(c.habits))
	for id, h := range c.habits {
		habits[id] = h
	}
	stats := copyStats(c.stats)
	c.mu.Unlock()

	// Store I/O runs outside the lock; readers stay unblocked.
	if err := c.store.ReplaceAll(habits, stats); err != nil {
		return err
	}

	c.mu.Lock()
	c.lastSync = time.Now()
	c.mu.Unlock()
	return nil
}

// LastSync returns the time of the last successful full persist, zero
// if none has happened yet.
func (c *Cache) LastSync() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSync
}

func copyStats(stats map[string]map[string]bool) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(stats))
	for day, bucket := range stats {
		b := make(map[string]bool, len(bucket))
		for id, done := range bucket {
			b[id] = done
		}
		out[day] = b
	}
	return out
}
