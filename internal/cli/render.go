// Package cli provides formatting and rendering utilities for terminal
// output: the streak summary table and the month calendar grid.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"streakbot/internal/render"
	"streakbot/internal/streak"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	goldStyle    = lipgloss.NewStyle().Foreground(ColorYellow)
	perfectStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	partialStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	missedStyle  = lipgloss.NewStyle().Foreground(ColorRed)
)

// DayMarker returns the single-character terminal marker for a day
// status, colored for the active profile.
func DayMarker(s streak.Status) string {
	switch s {
	case streak.StatusGold:
		return goldStyle.Render("★")
	case streak.StatusPerfect:
		return perfectStyle.Render("●")
	case streak.StatusPartial:
		return partialStyle.Render("◐")
	case streak.StatusMissed:
		return missedStyle.Render("○")
	default:
		return " "
	}
}

// RenderMonth renders a month view as a fixed-width calendar grid.
func RenderMonth(v render.MonthView) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n\n  ")
	for _, label := range v.DowLabels {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s", label)))
	}
	b.WriteString("\n")

	for _, week := range v.Weeks {
		b.WriteString("  ")
		for _, cell := range week {
			if cell.Day == 0 {
				b.WriteString(strings.Repeat(" ", 5))
				continue
			}
			b.WriteString(valueStyle.Render(fmt.Sprintf("%2d", cell.Day)))
			b.WriteString(" ")
			b.WriteString(DayMarker(cell.Status))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(mutedStyle.Render("★ gold week   ● all done   ◐ partial   ○ missed"))
	b.WriteString("\n")

	return b.String()
}

// SummaryTable builds the streak summary table for a habit list.
func SummaryTable(items []render.HabitSummary, threshold int) Table {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		today := "—"
		if it.TodayMarked {
			if it.TodayDone {
				today = "done"
			} else {
				today = "missed"
			}
		}
		rows = append(rows, []string{
			it.Name,
			fmt.Sprintf("%d", it.Current),
			fmt.Sprintf("%d", it.Best),
			FormatProgress(it.Best, threshold),
			today,
		})
	}

	return Table{
		Title:   "Habits",
		Headers: []string{"Habit", "Current", "Best", "Progress", "Today"},
		Rows:    rows,
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	border := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	border("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			padded := fmt.Sprintf(" %-*s ", widths[i], h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		border("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	border("╰", "┴", "╯")

	return b.String()
}
