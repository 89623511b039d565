// Package bot implements the Telegram transport: long polling, command
// and callback dispatch, and inline keyboard construction. All state
// reads and mutations go through the shared cache; nothing here touches
// the store directly except via the cache's sync/load entry points.
package bot

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"streakbot/internal/cache"
	"streakbot/internal/config"
)

const (
	pollTimeoutSec = 30
	pollRetryDelay = 3 * time.Second
	conflictLogGap = time.Minute
)

// Bot is the Telegram-facing front end over the shared cache.
type Bot struct {
	api       *tgbotapi.BotAPI
	cache     *cache.Cache
	floor     time.Time
	threshold int

	mu         sync.Mutex
	pendingAdd map[int64]bool // user ids waiting to send a habit name

	lastConflictLog time.Time
}

// New authorizes against the Telegram API and returns the bot.
func New(token string, c *cache.Cache, cfg config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorizing bot: %w", err)
	}

	return &Bot{
		api:        api,
		cache:      c,
		floor:      cfg.Tracking.FloorDay(),
		threshold:  cfg.Tracking.SuccessThreshold,
		pendingAdd: make(map[int64]bool),
	}, nil
}

// Run polls for updates until ctx is canceled. Poll failures never
// terminate the loop: they are logged (conflicts rate-limited to one
// line per minute) and retried after a short backoff.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("streakbot: authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSec

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := b.api.GetUpdates(u)
		if err != nil {
			b.logPollError(err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= u.Offset {
				u.Offset = upd.UpdateID + 1
			}
			b.dispatch(upd)
		}
	}
}

// logPollError logs a polling failure. A 409 conflict means another
// instance is running getUpdates against the same token; that is a
// transport condition, not a data problem, so it is logged sparsely and
// the loop just backs off and retries.
func (b *Bot) logPollError(err error) {
	if strings.Contains(err.Error(), "Conflict") {
		if time.Since(b.lastConflictLog) >= conflictLogGap {
			log.Printf("streakbot: another instance is polling this token, backing off")
			b.lastConflictLog = time.Now()
		}
		return
	}
	log.Printf("streakbot: poll error: %v", err)
}

func (b *Bot) dispatch(upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		b.handle("callback", func() error { return b.handleCallback(upd.CallbackQuery) })
	case upd.Message != nil && upd.Message.IsCommand():
		b.handle(upd.Message.Command(), func() error { return b.handleCommand(upd.Message) })
	case upd.Message != nil:
		b.handle("text", func() error { return b.handleText(upd.Message) })
	}
}

// handle wraps every handler invocation so one bad event cannot take
// down the polling loop: errors are logged, panics are logged with a
// stack trace, and the bot stays responsive for the next event.
func (b *Bot) handle(name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("streakbot: handler %q panicked: %v\n%s", name, r, debug.Stack())
		}
	}()

	if err := fn(); err != nil {
		log.Printf("streakbot: handler %q: %v", name, err)
	}
}

func (b *Bot) setPendingAdd(userID int64, pending bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pending {
		b.pendingAdd[userID] = true
	} else {
		delete(b.pendingAdd, userID)
	}
}

func (b *Bot) isPendingAdd(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingAdd[userID]
}
