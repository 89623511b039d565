// Package render turns cache snapshots into transport-agnostic view
// models: month calendars, per-day menus, and streak summaries. The
// Telegram keyboard builder, the terminal renderer, and the TUI all
// consume the same structures so every surface shows the same state.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"streakbot/internal/model"
	"streakbot/internal/streak"
)

// Callback tokens shared between the builders and the transport router.
const (
	TokenNoop     = "noop"
	TokenAddHabit = "add_habit"

	tokenDayPrefix    = "day_"
	tokenTogglePrefix = "toggle_"
	tokenBackPrefix   = "back_"
	tokenMonthPrefix  = "month_"
)

// DayToken builds the open-day-menu token for a day key.
func DayToken(dayKey string) string { return tokenDayPrefix + dayKey }

// ToggleToken builds the flip-status token for one habit on one day.
func ToggleToken(dayKey, habitID string) string {
	return tokenTogglePrefix + dayKey + "_" + habitID
}

// BackToken builds the return-to-month token for a month key.
func BackToken(monthKey string) string { return tokenBackPrefix + monthKey }

// MonthToken builds the show-month navigation token.
func MonthToken(monthKey string) string { return tokenMonthPrefix + monthKey }

// Cell is one calendar slot: a day of the displayed month or padding.
type Cell struct {
	Day    int    // 0 for padding outside the month
	Glyph  string // status glyph, empty when nothing to show
	Token  string // callback token; TokenNoop for padding
	Status streak.Status
}

// Label returns the text shown on the cell.
func (c Cell) Label() string {
	if c.Day == 0 {
		return " "
	}
	return strconv.Itoa(c.Day) + c.Glyph
}

// MonthView is the calendar view model for one month.
type MonthView struct {
	Year      int
	Month     time.Month
	Title     string
	DowLabels []string
	Weeks     [][]Cell
	PrevToken string
	NextToken string
	AddToken  string
}

var dowLabels = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Month builds the calendar view for year/month from a stats snapshot.
// Weeks start Monday; days outside the month are padding cells.
func Month(year int, month time.Month, stats map[string]map[string]bool, habits map[string]model.Habit, floor, today time.Time) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	leadPad := (int(first.Weekday()) + 6) % 7 // Monday-first column of day 1

	var weeks [][]Cell
	week := make([]Cell, 0, 7)
	for i := 0; i < leadPad; i++ {
		week = append(week, Cell{Token: TokenNoop})
	}

	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		status := streak.Classify(d, stats, habits, floor, today)
		week = append(week, Cell{
			Day:    day,
			Glyph:  Glyph(status),
			Token:  DayToken(model.DayKey(d)),
			Status: status,
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]Cell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Cell{Token: TokenNoop})
		}
		weeks = append(weeks, week)
	}

	prev := first.AddDate(0, 0, -1)
	next := first.AddDate(0, 1, 0)

	return MonthView{
		Year:      year,
		Month:     month,
		Title:     fmt.Sprintf("%s %d", month.String(), year),
		DowLabels: dowLabels,
		Weeks:     weeks,
		PrevToken: MonthToken(model.MonthKey(prev.Year(), prev.Month())),
		NextToken: MonthToken(model.MonthKey(next.Year(), next.Month())),
		AddToken:  TokenAddHabit,
	}
}

// Glyph maps a day status to its calendar marker.
func Glyph(s streak.Status) string {
	switch s {
	case streak.StatusGold:
		return " ⭐"
	case streak.StatusMissed:
		return " 🔴"
	case streak.StatusPartial:
		return " 🟡"
	case streak.StatusPerfect:
		return " 🟢"
	default:
		return ""
	}
}

// DayItem is one habit line in a day menu.
type DayItem struct {
	HabitID string
	Name    string
	Done    bool
	Token   string
}

// DayView is the per-day toggle menu view model.
type DayView struct {
	DayKey    string
	Title     string
	Items     []DayItem
	BackToken string
}

// DayMenu builds the toggle menu for one day.
func DayMenu(dayKey string, stats map[string]map[string]bool, habits map[string]model.Habit) DayView {
	bucket := stats[dayKey]

	items := make([]DayItem, 0, len(habits))
	for id, h := range habits {
		items = append(items, DayItem{
			HabitID: id,
			Name:    h.Name,
			Done:    bucket[id],
			Token:   ToggleToken(dayKey, id),
		})
	}
	sortByID(items)

	title := dayKey
	if len(dayKey) == 8 {
		title = fmt.Sprintf("Habit status for %s.%s.%s", dayKey[6:], dayKey[4:6], dayKey[:4])
	}

	return DayView{
		DayKey:    dayKey,
		Title:     title,
		Items:     items,
		BackToken: BackToken(dayKey[:min(6, len(dayKey))]),
	}
}

// HabitSummary exposes the streak engine output for one habit plus
// today's explicit record, if any.
type HabitSummary struct {
	ID          string
	Name        string
	Current     int
	Best        int
	TodayMarked bool // an explicit record exists for today
	TodayDone   bool
}

// Summary computes per-habit summary lines, sorted by habit id.
func Summary(stats map[string]map[string]bool, habits map[string]model.Habit, floor, today time.Time) []HabitSummary {
	results := streak.Compute(stats, habits, floor, today)
	todayBucket := stats[model.DayKey(today)]

	out := make([]HabitSummary, 0, len(habits))
	for id, h := range habits {
		done, marked := todayBucket[id]
		out = append(out, HabitSummary{
			ID:          id,
			Name:        h.Name,
			Current:     results[id].Current,
			Best:        results[id].Best,
			TodayMarked: marked,
			TodayDone:   done,
		})
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].ID, out[j].ID) })
	return out
}

// MainText formats the main-screen message: one line per habit with
// best/current streaks. Habits past the success threshold show a plain
// day count; the rest show progress toward the threshold.
func MainText(items []HabitSummary, threshold int) string {
	if len(items) == 0 {
		return "No habits yet. Add one with the ➕ button.\n\nPick a day:"
	}

	var b strings.Builder
	b.WriteString("Best results:\n")
	for _, it := range items {
		b.WriteString("\n")
		b.WriteString(it.Name)
		if threshold > 0 && it.Best < threshold {
			b.WriteString(fmt.Sprintf(" — %d/%d days (%d%%)", it.Best, threshold, it.Best*100/threshold))
		} else {
			b.WriteString(fmt.Sprintf(" — %d days", it.Best))
		}
		if it.Current > 0 && it.Current != it.Best {
			b.WriteString(fmt.Sprintf(", current %d", it.Current))
		}
		if it.TodayMarked {
			if it.TodayDone {
				b.WriteString(" · today ✅")
			} else {
				b.WriteString(" · today ✖")
			}
		}
	}
	b.WriteString("\n\nPick a day:")
	return b.String()
}

func sortByID(items []DayItem) {
	sort.Slice(items, func(i, j int) bool { return lessID(items[i].HabitID, items[j].HabitID) })
}

// lessID orders numeric habit ids numerically, anything else
// lexicographically.
func lessID(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
