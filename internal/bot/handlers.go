package bot

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"streakbot/internal/model"
	"streakbot/internal/render"
)

func (b *Bot) handleCommand(m *tgbotapi.Message) error {
	switch m.Command() {
	case "start":
		return b.sendMain(m.Chat.ID)

	case "upload":
		if err := b.cache.SyncToStore(); err != nil {
			return b.reply(m, fmt.Sprintf("❌ Upload failed: %v", err))
		}
		if err := b.reply(m, "✅ Data uploaded to the database."); err != nil {
			return err
		}
		return b.sendMain(m.Chat.ID)

	case "reload":
		if err := b.cache.LoadFromStore(); err != nil {
			return b.reply(m, fmt.Sprintf("❌ Reload failed: %v", err))
		}
		if err := b.reply(m, "✅ Cache reloaded from the database."); err != nil {
			return err
		}
		return b.sendMain(m.Chat.ID)

	default:
		return b.reply(m, "Commands: /start, /upload, /reload")
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) error {
	// Always acknowledge so the client stops its spinner, even for
	// tokens we end up rejecting.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		return fmt.Errorf("answering callback: %w", err)
	}
	if cb.Message == nil {
		return nil
	}

	route, err := ParseToken(cb.Data)
	if err != nil {
		return err
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch route.Kind {
	case RouteNoop:
		return nil

	case RouteAddHabit:
		b.setPendingAdd(cb.From.ID, true)
		msg := tgbotapi.NewMessage(chatID, "Send the new habit name (optionally Name/dd.mm.yyyy for a start date):")
		_, err := b.api.Send(msg)
		return err

	case RouteDayMenu:
		return b.editToDayMenu(chatID, messageID, route.DayKey)

	case RouteToggle:
		b.cache.Toggle(route.DayKey, route.HabitID)
		return b.editToDayMenu(chatID, messageID, route.DayKey)

	case RouteMonth:
		return b.editToMonth(chatID, messageID, route.Year, time.Month(route.Month))

	default:
		return fmt.Errorf("unhandled route kind %d", route.Kind)
	}
}

func (b *Bot) handleText(m *tgbotapi.Message) error {
	if m.From == nil || !b.isPendingAdd(m.From.ID) {
		return b.reply(m, "Use /start to open the calendar.")
	}

	name, startDate, err := model.ParseHabitInput(m.Text, time.Now())
	if err != nil {
		// Keep the pending state so the user can just resend.
		return b.reply(m, fmt.Sprintf("❌ %v. Send the name again (Name or Name/dd.mm.yyyy).", err))
	}

	id := b.cache.NextHabitID()
	b.cache.AddHabit(model.Habit{ID: id, Name: name, StartDate: startDate})
	b.setPendingAdd(m.From.ID, false)

	if err := b.reply(m, fmt.Sprintf("Habit %q added!", name)); err != nil {
		return err
	}
	return b.sendMain(m.Chat.ID)
}

// sendMain sends a fresh main screen: streak summary text plus the
// current month's calendar keyboard.
func (b *Bot) sendMain(chatID int64) error {
	stats := b.cache.Stats()
	habits := b.cache.Habits()
	now := time.Now()

	text := render.MainText(render.Summary(stats, habits, b.floor, now), b.threshold)
	kb := monthKeyboard(render.Month(now.Year(), now.Month(), stats, habits, b.floor, now))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	_, err := b.api.Send(msg)
	return err
}

// editToMonth rewrites an existing message into the given month view.
func (b *Bot) editToMonth(chatID int64, messageID, year int, month time.Month) error {
	stats := b.cache.Stats()
	habits := b.cache.Habits()
	now := time.Now()

	text := render.MainText(render.Summary(stats, habits, b.floor, now), b.threshold)
	kb := monthKeyboard(render.Month(year, month, stats, habits, b.floor, now))

	_, err := b.api.Send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb))
	return err
}

// editToDayMenu rewrites an existing message into the day toggle menu.
func (b *Bot) editToDayMenu(chatID int64, messageID int, dayKey string) error {
	view := render.DayMenu(dayKey, b.cache.Stats(), b.cache.Habits())

	_, err := b.api.Send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, view.Title, dayKeyboard(view)))
	return err
}

func (b *Bot) reply(m *tgbotapi.Message, text string) error {
	msg := tgbotapi.NewMessage(m.Chat.ID, text)
	msg.ReplyToMessageID = m.MessageID
	_, err := b.api.Send(msg)
	return err
}
