package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayKeyLayout   = "20060102"
	userDateLayout = "02.01.2006"
)

// DayKey formats t as the canonical 8-digit YYYYMMDD key used for all
// persisted and in-memory stat buckets.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYYMMDD key into a naive local calendar date.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// ParseUserDate parses dd.mm.yyyy user input and returns the day key.
func ParseUserDate(s string) (string, error) {
	t, err := time.ParseInLocation(userDateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected dd.mm.yyyy", s)
	}
	return DayKey(t), nil
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// MonthKey formats a year/month pair as the YYYYMM navigation token.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d%02d", year, int(month))
}

// ParseMonthKey parses a YYYYMM navigation token.
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.ParseInLocation("200601", key, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t.Year(), t.Month(), nil
}

// Midnight truncates t to its local calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
