package model

import (
	"testing"
	"time"
)

var testToday = time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local)

func TestParseHabitInput_NameOnly(t *testing.T) {
	name, start, err := ParseHabitInput("  Read  ", testToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Read" {
		t.Errorf("name = %q, want Read", name)
	}
	if start != "20250930" {
		t.Errorf("start = %q, want today (20250930)", start)
	}
}

func TestParseHabitInput_NameWithDate(t *testing.T) {
	name, start, err := ParseHabitInput("Meditate/27.09.2025", testToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Meditate" {
		t.Errorf("name = %q, want Meditate", name)
	}
	if start != "20250927" {
		t.Errorf("start = %q, want 20250927", start)
	}
}

func TestParseHabitInput_InvalidMonthRejected(t *testing.T) {
	_, _, err := ParseHabitInput("Meditate/01.13.2025", testToday)
	if err == nil {
		t.Fatal("input with month 13 accepted, want error")
	}
}

func TestParseHabitInput_EmptyName(t *testing.T) {
	for _, in := range []string{"", "   ", "/27.09.2025"} {
		if _, _, err := ParseHabitInput(in, testToday); err == nil {
			t.Errorf("ParseHabitInput(%q) succeeded, want error", in)
		}
	}
}

func TestHabitStartDayFallback(t *testing.T) {
	floor := time.Date(2025, 9, 27, 0, 0, 0, 0, time.Local)

	h := Habit{ID: "1", Name: "Read", StartDate: "20251001"}
	if DayKey(h.StartDay(floor)) != "20251001" {
		t.Errorf("StartDay = %s, want 20251001", DayKey(h.StartDay(floor)))
	}

	for _, bad := range []string{"", "garbage", "20251341"} {
		h := Habit{ID: "2", Name: "X", StartDate: bad}
		if !h.StartDay(floor).Equal(floor) {
			t.Errorf("StartDay(%q) = %v, want floor", bad, h.StartDay(floor))
		}
	}
}
