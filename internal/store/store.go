// Package store provides the SQLite-backed durable store for habits and
// daily stats. Persistence is full-snapshot: ReplaceAll swaps the whole
// data set in one transaction and LoadAll reads it back.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"streakbot/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the SQLite database holding the habits and stats tables.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path, creates missing
// tables, and applies the additive start_date migration. Rows predating
// the migration are backfilled with floorDate.
func Open(dbPath, floorDate string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(floorDate); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate adds the start_date column to a legacy habits table and
// backfills existing rows with the floor date. New databases already
// carry the column, so this is a no-op for them.
func (s *Store) migrate(floorDate string) error {
	hasColumn, err := s.hasStartDateColumn()
	if err != nil {
		return err
	}
	if !hasColumn {
		if _, err := s.db.Exec(`ALTER TABLE habits ADD COLUMN start_date TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("adding start_date column: %w", err)
		}
	}

	_, err = s.db.Exec(`UPDATE habits SET start_date = ? WHERE start_date = ''`, floorDate)
	if err != nil {
		return fmt.Errorf("backfilling start_date: %w", err)
	}
	return nil
}

func (s *Store) hasStartDateColumn() (bool, error) {
	rows, err := s.db.Query(`PRAGMA table_info(habits)`)
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == "start_date" {
			return true, nil
		}
	}
	return false, rows.Err()
}

// ReplaceAll persists a full snapshot: both tables are cleared and
// reinserted inside a single transaction, so a failure leaves the store
// at its prior contents. Stats clear first and habits insert first to
// keep the foreign key satisfied throughout.
func (s *Store) ReplaceAll(habits map[string]model.Habit, stats map[string]map[string]bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM stats`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	for _, h := range habits {
		_, err := tx.Exec(`INSERT INTO habits (id, name, start_date, created_at) VALUES (?, ?, ?, ?)`,
			h.ID, h.Name, h.StartDate, now)
		if err != nil {
			return fmt.Errorf("inserting habit %s: %w", h.ID, err)
		}
	}

	for day, bucket := range stats {
		for habitID, done := range bucket {
			status := 0
			if done {
				status = 1
			}
			_, err := tx.Exec(`INSERT INTO stats (date, habit_id, status, created_at) VALUES (?, ?, ?, ?)`,
				day, habitID, status, now)
			if err != nil {
				return fmt.Errorf("inserting stat (%s, %s): %w", day, habitID, err)
			}
		}
	}

	return tx.Commit()
}

// LoadAll reads both tables and regroups stat rows into the
// day -> habit id -> status mapping the cache uses.
func (s *Store) LoadAll() (map[string]model.Habit, map[string]map[string]bool, error) {
	habits := make(map[string]model.Habit)

	rows, err := s.db.Query(`SELECT id, name, start_date FROM habits`)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var h model.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.StartDate); err != nil {
			return nil, nil, err
		}
		habits[h.ID] = h
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	stats := make(map[string]map[string]bool)

	statRows, err := s.db.Query(`SELECT date, habit_id, status FROM stats`)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = statRows.Close() }()

	for statRows.Next() {
		var (
			day, habitID string
			status       int
		)
		if err := statRows.Scan(&day, &habitID, &status); err != nil {
			return nil, nil, err
		}
		if stats[day] == nil {
			stats[day] = make(map[string]bool)
		}
		stats[day][habitID] = status != 0
	}
	if err := statRows.Err(); err != nil {
		return nil, nil, err
	}

	return habits, stats, nil
}

// Counts returns the number of persisted habits and stat rows.
func (s *Store) Counts() (habitCount, statCount int, err error) {
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&habitCount); err != nil {
		return 0, 0, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM stats`).Scan(&statCount); err != nil {
		return 0, 0, err
	}
	return habitCount, statCount, nil
}
