package render

import (
	"strings"
	"testing"
	"time"

	"streakbot/internal/model"
)

var (
	floor = time.Date(2025, 9, 27, 0, 0, 0, 0, time.Local)
	today = time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local)
)

func testHabits() map[string]model.Habit {
	return map[string]model.Habit{
		"1": {ID: "1", Name: "Read", StartDate: "20250927"},
	}
}

func testStats() map[string]map[string]bool {
	return map[string]map[string]bool{
		"20250927": {"1": true},
		"20250928": {"1": false},
		"20250929": {"1": true},
	}
}

func TestMonthGridShape(t *testing.T) {
	// September 2025 starts on a Monday and has 30 days: five rows,
	// no leading padding, five trailing pads.
	v := Month(2025, time.September, testStats(), testHabits(), floor, today)

	if v.Title != "September 2025" {
		t.Errorf("Title = %q, want September 2025", v.Title)
	}
	if len(v.Weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(v.Weeks))
	}
	for i, week := range v.Weeks {
		if len(week) != 7 {
			t.Fatalf("week %d has %d cells, want 7", i, len(week))
		}
	}
	if v.Weeks[0][0].Day != 1 {
		t.Errorf("first cell day = %d, want 1", v.Weeks[0][0].Day)
	}
	if v.Weeks[4][1].Day != 30 {
		t.Errorf("cell (4,1) day = %d, want 30", v.Weeks[4][1].Day)
	}
	last := v.Weeks[4][6]
	if last.Day != 0 || last.Token != TokenNoop {
		t.Errorf("trailing pad = %+v, want empty noop cell", last)
	}
}

func TestMonthGridLeadingPad(t *testing.T) {
	// October 2025 starts on a Wednesday: two leading pads.
	v := Month(2025, time.October, nil, nil, floor, today)
	if v.Weeks[0][0].Day != 0 || v.Weeks[0][1].Day != 0 {
		t.Fatalf("leading pads = %d,%d, want 0,0", v.Weeks[0][0].Day, v.Weeks[0][1].Day)
	}
	if v.Weeks[0][2].Day != 1 {
		t.Fatalf("first day cell = %d, want 1", v.Weeks[0][2].Day)
	}
}

func TestMonthCellGlyphsAndTokens(t *testing.T) {
	v := Month(2025, time.September, testStats(), testHabits(), floor, today)

	cell := func(day int) Cell {
		for _, week := range v.Weeks {
			for _, c := range week {
				if c.Day == day {
					return c
				}
			}
		}
		t.Fatalf("day %d not found", day)
		return Cell{}
	}

	if got := cell(27); got.Glyph != " 🟢" || got.Token != "day_20250927" {
		t.Errorf("day 27 = %+v, want perfect glyph and day token", got)
	}
	if got := cell(28); got.Glyph != " 🔴" {
		t.Errorf("day 28 glyph = %q, want missed", got.Glyph)
	}
	if got := cell(30); got.Glyph != "" {
		t.Errorf("unmarked today glyph = %q, want none", got.Glyph)
	}
	if got := cell(20); got.Glyph != "" {
		t.Errorf("pre-floor day glyph = %q, want none", got.Glyph)
	}
}

func TestMonthNavigationTokens(t *testing.T) {
	v := Month(2025, time.September, nil, nil, floor, today)
	if v.PrevToken != "month_202508" {
		t.Errorf("PrevToken = %q, want month_202508", v.PrevToken)
	}
	if v.NextToken != "month_202510" {
		t.Errorf("NextToken = %q, want month_202510", v.NextToken)
	}

	// Year boundaries.
	v = Month(2025, time.January, nil, nil, floor, today)
	if v.PrevToken != "month_202412" {
		t.Errorf("PrevToken = %q, want month_202412", v.PrevToken)
	}
	v = Month(2025, time.December, nil, nil, floor, today)
	if v.NextToken != "month_202601" {
		t.Errorf("NextToken = %q, want month_202601", v.NextToken)
	}
}

func TestDayMenu(t *testing.T) {
	habits := map[string]model.Habit{
		"2":  {ID: "2", Name: "Run"},
		"10": {ID: "10", Name: "Stretch"},
		"1":  {ID: "1", Name: "Read"},
	}
	stats := map[string]map[string]bool{
		"20250929": {"1": true},
	}

	v := DayMenu("20250929", stats, habits)
	if v.Title != "Habit status for 29.09.2025" {
		t.Errorf("Title = %q", v.Title)
	}
	if v.BackToken != "back_202509" {
		t.Errorf("BackToken = %q, want back_202509", v.BackToken)
	}

	var ids []string
	for _, it := range v.Items {
		ids = append(ids, it.HabitID)
	}
	if strings.Join(ids, ",") != "1,2,10" {
		t.Fatalf("item order = %v, want numeric 1,2,10", ids)
	}

	if !v.Items[0].Done {
		t.Error("habit 1 should be done")
	}
	if v.Items[1].Done {
		t.Error("habit 2 should not be done")
	}
	if v.Items[0].Token != "toggle_20250929_1" {
		t.Errorf("toggle token = %q", v.Items[0].Token)
	}
}

func TestSummaryExposesTodayRecord(t *testing.T) {
	stats := testStats()
	stats["20250930"] = map[string]bool{"1": false}

	items := Summary(stats, testHabits(), floor, today)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	it := items[0]
	if !it.TodayMarked || it.TodayDone {
		t.Errorf("today record = (marked=%v, done=%v), want (true, false)", it.TodayMarked, it.TodayDone)
	}
	if it.Best != 1 {
		t.Errorf("Best = %d, want 1", it.Best)
	}
	// Today's explicit false is not folded in: only historical days
	// break the run, so yesterday's streak of 1 is still current.
	if it.Current != 1 {
		t.Errorf("Current = %d, want 1", it.Current)
	}
}

func TestMainTextThresholdSwitch(t *testing.T) {
	below := MainText([]HabitSummary{{Name: "Read", Best: 7, Current: 7}}, 21)
	if !strings.Contains(below, "7/21 days (33%)") {
		t.Errorf("below-threshold text = %q, want progress format", below)
	}

	above := MainText([]HabitSummary{{Name: "Read", Best: 30, Current: 4}}, 21)
	if !strings.Contains(above, "30 days") {
		t.Errorf("above-threshold text = %q, want plain day count", above)
	}
	if !strings.Contains(above, "current 4") {
		t.Errorf("text = %q, want current streak shown", above)
	}
}

func TestMainTextEmpty(t *testing.T) {
	got := MainText(nil, 21)
	if !strings.Contains(got, "No habits yet") {
		t.Fatalf("empty text = %q", got)
	}
}
