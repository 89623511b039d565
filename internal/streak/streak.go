// Package streak derives display metrics from a stats snapshot: per-habit
// streaks, gold-week detection, and per-day status classification. All
// functions are pure; callers pass the snapshot and the reference day.
package streak

import (
	"time"

	"streakbot/internal/model"
)

// Result holds the streak counters for one habit.
type Result struct {
	Current int // run ending today (or yesterday if today is unmarked)
	Best    int // longest run ever recorded
}

// Status classifies a single calendar day for rendering.
type Status int

const (
	StatusNone    Status = iota // no glyph: pre-floor, future, or nothing to do
	StatusPartial               // some but not all active habits done
	StatusGold                  // the whole week is gold
	StatusPerfect               // every active habit done
	StatusMissed                // past day with nothing done
)

func (s Status) String() string {
	switch s {
	case StatusPartial:
		return "partial"
	case StatusGold:
		return "gold"
	case StatusPerfect:
		return "perfect"
	case StatusMissed:
		return "missed"
	default:
		return "none"
	}
}

// Compute walks each habit's active window and returns its streak
// counters keyed by habit id.
//
// The historical walk covers every day from the habit's start date up to
// but not including today; a day with no record breaks the streak the
// same way an explicit false does. Today is folded in separately so a
// same-day completion reflects in Current immediately, while an
// unmarked today does not break the run.
func Compute(stats map[string]map[string]bool, habits map[string]model.Habit, floor, today time.Time) map[string]Result {
	today = model.Midnight(today)
	todayKey := model.DayKey(today)

	results := make(map[string]Result, len(habits))
	for id, h := range habits {
		start := model.Midnight(h.StartDay(floor))

		var run, best int
		for d := start; d.Before(today); d = d.AddDate(0, 0, 1) {
			if stats[model.DayKey(d)][id] {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}

		if !start.After(today) && stats[todayKey][id] {
			run++
			if run > best {
				best = run
			}
		}

		results[id] = Result{Current: run, Best: best}
	}
	return results
}

// IsWeekGold reports whether the Monday-started week containing day is
// gold: every one of its seven days has a stored record, and every
// habit already started on a given day is marked done that day. A day
// with no record at all fails the whole week.
func IsWeekGold(day time.Time, stats map[string]map[string]bool, habits map[string]model.Habit, floor time.Time) bool {
	monday := model.WeekStart(model.Midnight(day))

	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		bucket, ok := stats[model.DayKey(d)]
		if !ok {
			return false
		}
		for id, h := range habits {
			if h.StartDay(floor).After(d) {
				continue // not yet started, cannot block the week
			}
			if !bucket[id] {
				return false
			}
		}
	}
	return true
}

// Classify returns the display status for a single calendar day,
// computed from the same snapshot the streak walk uses so one rendered
// screen stays internally consistent.
func Classify(day time.Time, stats map[string]map[string]bool, habits map[string]model.Habit, floor, today time.Time) Status {
	day = model.Midnight(day)
	if day.Before(model.Midnight(floor)) {
		return StatusNone
	}

	if IsWeekGold(day, stats, habits, floor) {
		return StatusGold
	}

	totalActive := 0
	for _, h := range habits {
		if !h.StartDay(floor).After(day) {
			totalActive++
		}
	}
	if totalActive == 0 {
		return StatusNone
	}

	done := 0
	bucket := stats[model.DayKey(day)]
	for id, h := range habits {
		if h.StartDay(floor).After(day) {
			continue
		}
		if bucket[id] {
			done++
		}
	}

	switch {
	case done == 0:
		if day.Before(model.Midnight(today)) {
			return StatusMissed
		}
		return StatusNone
	case done == totalActive:
		return StatusPerfect
	default:
		return StatusPartial
	}
}
