// Package model defines domain types for streakbot habits and day keys.
package model

import (
	"errors"
	"strings"
	"time"
)

// Habit is a user-defined recurring task tracked per calendar day.
// Habits are immutable once created: no rename, no delete.
type Habit struct {
	ID        string
	Name      string
	StartDate string // YYYYMMDD; days before it never count for this habit
}

// StartDay resolves the habit's start date. An empty or unparseable
// start date falls back to the global floor so one bad row cannot fail
// a whole computation.
func (h Habit) StartDay(floor time.Time) time.Time {
	if h.StartDate == "" {
		return floor
	}
	t, err := ParseDayKey(h.StartDate)
	if err != nil {
		return floor
	}
	return t
}

// ErrEmptyHabitName is returned when add-habit input has no name part.
var ErrEmptyHabitName = errors.New("habit name is empty")

// ParseHabitInput parses add-habit free text: either "Name" or
// "Name/dd.mm.yyyy". A missing date defaults to today. A malformed
// date is an error; the caller must not create a habit in that case.
func ParseHabitInput(text string, today time.Time) (name, startDate string, err error) {
	text = strings.TrimSpace(text)

	if idx := strings.LastIndex(text, "/"); idx >= 0 {
		name = strings.TrimSpace(text[:idx])
		startDate, err = ParseUserDate(text[idx+1:])
		if err != nil {
			return "", "", err
		}
	} else {
		name = text
		startDate = DayKey(today)
	}

	if name == "" {
		return "", "", ErrEmptyHabitName
	}
	return name, startDate, nil
}
