package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"streakbot/internal/render"
)

// monthKeyboard converts a month view model into an inline calendar:
// title row, weekday header, one row per week, and a navigation row.
func monthKeyboard(v render.MonthView) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Weeks)+3)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(v.Title, render.TokenNoop),
	))

	header := make([]tgbotapi.InlineKeyboardButton, 0, 7)
	for _, label := range v.DowLabels {
		header = append(header, tgbotapi.NewInlineKeyboardButtonData(label, render.TokenNoop))
	}
	rows = append(rows, header)

	for _, week := range v.Weeks {
		row := make([]tgbotapi.InlineKeyboardButton, 0, 7)
		for _, cell := range week {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(cell.Label(), cell.Token))
		}
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅", v.PrevToken),
		tgbotapi.NewInlineKeyboardButtonData("➕", v.AddToken),
		tgbotapi.NewInlineKeyboardButtonData("➡", v.NextToken),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// dayKeyboard converts a day menu view model into one button per habit
// plus a back-to-calendar row.
func dayKeyboard(v render.DayView) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Items)+1)

	for _, item := range v.Items {
		label := item.Name
		if item.Done {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, item.Token),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to calendar", v.BackToken),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
