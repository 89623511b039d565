package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"streakbot/internal/model"
)

const testFloor = "20250927"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "streakbot.db"), testFloor)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReplaceAllLoadAllRoundTrip(t *testing.T) {
	s := openTestStore(t)

	habits := map[string]model.Habit{
		"1": {ID: "1", Name: "Read", StartDate: "20250927"},
		"2": {ID: "2", Name: "Run", StartDate: "20250929"},
	}
	stats := map[string]map[string]bool{
		"20250927": {"1": true},
		"20250928": {"1": false},
		"20250929": {"1": true, "2": true},
	}

	if err := s.ReplaceAll(habits, stats); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	gotHabits, gotStats, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	if len(gotHabits) != len(habits) {
		t.Fatalf("habit count = %d, want %d", len(gotHabits), len(habits))
	}
	for id, want := range habits {
		if gotHabits[id] != want {
			t.Errorf("habit %s = %+v, want %+v", id, gotHabits[id], want)
		}
	}

	if len(gotStats) != len(stats) {
		t.Fatalf("stat day count = %d, want %d", len(gotStats), len(stats))
	}
	for day, bucket := range stats {
		if len(gotStats[day]) != len(bucket) {
			t.Errorf("day %s has %d entries, want %d", day, len(gotStats[day]), len(bucket))
		}
		for id, want := range bucket {
			if gotStats[day][id] != want {
				t.Errorf("stat (%s, %s) = %v, want %v", day, id, gotStats[day][id], want)
			}
		}
	}
}

func TestReplaceAllIsFullReplace(t *testing.T) {
	s := openTestStore(t)

	first := map[string]model.Habit{"1": {ID: "1", Name: "Read", StartDate: testFloor}}
	if err := s.ReplaceAll(first, map[string]map[string]bool{"20250927": {"1": true}}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	second := map[string]model.Habit{"2": {ID: "2", Name: "Run", StartDate: testFloor}}
	if err := s.ReplaceAll(second, nil); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	habits, stats, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("habit count = %d, want 1", len(habits))
	}
	if _, ok := habits["1"]; ok {
		t.Error("habit from the previous snapshot survived a replace")
	}
	if len(stats) != 0 {
		t.Errorf("stat day count = %d, want 0", len(stats))
	}
}

func TestReplaceAllEmptySnapshot(t *testing.T) {
	s := openTestStore(t)

	if err := s.ReplaceAll(map[string]model.Habit{"1": {ID: "1", Name: "Read"}}, nil); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if err := s.ReplaceAll(nil, nil); err != nil {
		t.Fatalf("ReplaceAll(empty): %v", err)
	}

	habitCount, statCount, err := s.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if habitCount != 0 || statCount != 0 {
		t.Fatalf("Counts = (%d, %d), want (0, 0)", habitCount, statCount)
	}
}

func TestMigrationBackfillsStartDate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	// Build a pre-migration database by hand: habits has no start_date.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE habits (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			created_at  TEXT NOT NULL
		);
		INSERT INTO habits (id, name, created_at) VALUES ('1', 'Read', '2025-09-27T00:00:00Z');
	`)
	if err != nil {
		t.Fatalf("seed legacy schema: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close raw db: %v", err)
	}

	s, err := Open(dbPath, testFloor)
	if err != nil {
		t.Fatalf("Open over legacy db: %v", err)
	}
	defer func() { _ = s.Close() }()

	habits, _, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if got := habits["1"].StartDate; got != testFloor {
		t.Fatalf("backfilled start_date = %q, want %q", got, testFloor)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "streakbot.db")

	s, err := Open(dbPath, testFloor)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := s.ReplaceAll(map[string]model.Habit{"1": {ID: "1", Name: "Read", StartDate: testFloor}}, nil); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(dbPath, testFloor)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer func() { _ = s2.Close() }()

	habits, _, err := s2.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if habits["1"].Name != "Read" {
		t.Fatalf("habit lost across reopen: %+v", habits)
	}
}
