// Package tui provides the interactive Bubble Tea calendar for streakbot.
package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"streakbot/internal/cache"
	"streakbot/internal/cli"
	"streakbot/internal/model"
	"streakbot/internal/render"
)

type mode int

const (
	modeMonth mode = iota
	modeDay
	modeAddHabit
)

// syncDoneMsg reports a finished force-upload.
type syncDoneMsg struct{ err error }

// reloadDoneMsg reports a finished cache reload.
type reloadDoneMsg struct{ err error }

// App is the root Bubble Tea model.
type App struct {
	cache     *cache.Cache
	floor     time.Time
	threshold int

	// Displayed month and selected day.
	year      int
	month     time.Month
	cursorDay int

	mode    mode
	dayKey  string // open day in modeDay
	input   textinput.Model
	status  string
	width   int
	height  int
}

// NewApp returns the TUI bound to the shared cache.
func NewApp(c *cache.Cache, floor time.Time, threshold int) App {
	now := time.Now()

	ti := textinput.New()
	ti.Placeholder = "Name or Name/dd.mm.yyyy"
	ti.CharLimit = 120
	ti.Width = 40

	return App{
		cache:     c,
		floor:     floor,
		threshold: threshold,
		year:      now.Year(),
		month:     now.Month(),
		cursorDay: now.Day(),
		input:     ti,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case syncDoneMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("upload failed: %v", msg.err)
		} else {
			a.status = "uploaded to store"
		}
		return a, nil

	case reloadDoneMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("reload failed: %v", msg.err)
		} else {
			a.status = "reloaded from store"
		}
		return a, nil

	case tea.KeyMsg:
		if a.mode == modeAddHabit {
			return a.updateAddHabit(msg)
		}
		return a.updateCalendar(msg)
	}

	return a, nil
}

func (a App) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "left", "h":
		a.setMonth(time.Date(a.year, a.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0))
		return a, nil

	case "right", "l":
		a.setMonth(time.Date(a.year, a.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0))
		return a, nil

	case "up", "k":
		a.moveCursor(-7)
		return a, nil

	case "down", "j":
		a.moveCursor(7)
		return a, nil

	case "shift+left", "H":
		a.moveCursor(-1)
		return a, nil

	case "shift+right", "L":
		a.moveCursor(1)
		return a, nil

	case "enter":
		if a.mode == modeMonth {
			a.mode = modeDay
			a.dayKey = model.DayKey(a.cursorDate())
		}
		return a, nil

	case "esc":
		a.mode = modeMonth
		return a, nil

	case "a":
		a.mode = modeAddHabit
		a.input.SetValue("")
		a.input.Focus()
		return a, textinput.Blink

	case "u":
		c := a.cache
		return a, func() tea.Msg { return syncDoneMsg{err: c.SyncToStore()} }

	case "r":
		c := a.cache
		return a, func() tea.Msg { return reloadDoneMsg{err: c.LoadFromStore()} }

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if a.mode == modeDay {
			a.toggleNth(msg.String())
		}
		return a, nil
	}

	return a, nil
}

func (a App) updateAddHabit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeMonth
		return a, nil

	case "enter":
		name, startDate, err := model.ParseHabitInput(a.input.Value(), time.Now())
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		id := a.cache.NextHabitID()
		a.cache.AddHabit(model.Habit{ID: id, Name: name, StartDate: startDate})
		a.status = fmt.Sprintf("added %q", name)
		a.mode = modeMonth
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// toggleNth flips the nth habit (1-based, menu order) for the open day.
func (a *App) toggleNth(digit string) {
	n, _ := strconv.Atoi(digit)
	view := render.DayMenu(a.dayKey, a.cache.Stats(), a.cache.Habits())
	if n < 1 || n > len(view.Items) {
		return
	}
	a.cache.Toggle(a.dayKey, view.Items[n-1].HabitID)
}

func (a *App) setMonth(first time.Time) {
	a.year = first.Year()
	a.month = first.Month()
	if a.cursorDay > daysIn(a.year, a.month) {
		a.cursorDay = daysIn(a.year, a.month)
	}
}

func (a *App) moveCursor(delta int) {
	d := a.cursorDate().AddDate(0, 0, delta)
	a.year = d.Year()
	a.month = d.Month()
	a.cursorDay = d.Day()
}

func (a App) cursorDate() time.Time {
	return time.Date(a.year, a.month, a.cursorDay, 0, 0, 0, 0, time.Local)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	cursorStyle = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)

// View implements tea.Model.
func (a App) View() string {
	switch a.mode {
	case modeDay:
		return a.viewDay()
	case modeAddHabit:
		return a.viewAddHabit()
	default:
		return a.viewMonth()
	}
}

func (a App) viewMonth() string {
	stats := a.cache.Stats()
	habits := a.cache.Habits()
	now := time.Now()

	v := render.Month(a.year, a.month, stats, habits, a.floor, now)
	out := "\n" + cli.RenderMonth(v)

	out += "\n" + cli.RenderTable(cli.SummaryTable(render.Summary(stats, habits, a.floor, now), a.threshold))

	out += "\n  " + cursorStyle.Render(fmt.Sprintf("selected: %s", cli.FormatDayKey(model.DayKey(a.cursorDate()))))
	if a.status != "" {
		out += "\n  " + statusStyle.Render(a.status)
	}
	out += "\n\n  " + helpStyle.Render("h/l month · j/k week · H/L day · enter open day · a add · u upload · r reload · q quit")
	return out + "\n"
}

func (a App) viewDay() string {
	view := render.DayMenu(a.dayKey, a.cache.Stats(), a.cache.Habits())

	out := "\n  " + cursorStyle.Render(view.Title) + "\n\n"
	if len(view.Items) == 0 {
		out += "  " + statusStyle.Render("no habits yet — press a to add one") + "\n"
	}
	for i, item := range view.Items {
		marker := "·"
		if item.Done {
			marker = "✓"
		}
		out += fmt.Sprintf("  %d. %s %s\n", i+1, marker, item.Name)
	}
	if a.status != "" {
		out += "\n  " + statusStyle.Render(a.status)
	}
	out += "\n  " + helpStyle.Render("1-9 toggle · esc back · q quit")
	return out + "\n"
}

func (a App) viewAddHabit() string {
	out := "\n  " + cursorStyle.Render("New habit") + "\n\n"
	out += "  " + a.input.View() + "\n"
	if a.status != "" {
		out += "\n  " + statusStyle.Render(a.status)
	}
	out += "\n  " + helpStyle.Render("enter confirm · esc cancel")
	return out + "\n"
}
