// Package bot wires the tutoring core to Telegram: long polling,
// per-user serialized handling, the onboarding flow, lessons and talk
// mode. Everything domain-level lives in the core packages; this one
// only translates updates to core calls and verdicts to messages.
package bot

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tanasevich/engtutor/internal/conversation"
	"github.com/tanasevich/engtutor/internal/exercise"
	"github.com/tanasevich/engtutor/internal/grammar"
	"github.com/tanasevich/engtutor/internal/learner"
	"github.com/tanasevich/engtutor/internal/store"
	"github.com/tanasevich/engtutor/internal/studyplan"
)

// Core bundles the domain collaborators the bot drives.
type Core struct {
	Learners  *learner.Manager
	Selector  *exercise.Selector
	Checker   *exercise.Checker
	Partner   *conversation.Partner
	Planner   *studyplan.Planner
	Corrector *grammar.LLMCorrector

	// Events receives attempt analytics; nil disables recording.
	Events store.EventRepo
}

// Bot is the Telegram front end.
type Bot struct {
	api    *tgbotapi.BotAPI
	core   Core
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[int64]*session
	inboxes  map[int64]chan tgbotapi.Update
	wg       sync.WaitGroup
}

// New connects to Telegram and builds the bot.
func New(cfg Config, core Core, logger *slog.Logger) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Debug

	logger.Info("telegram bot authorized", "username", api.Self.UserName)

	return &Bot{
		api:      api,
		core:     core,
		logger:   logger,
		sessions: make(map[int64]*session),
		inboxes:  make(map[int64]chan tgbotapi.Update),
	}, nil
}

// Run polls for updates until ctx is cancelled. Each user's updates are
// handled in order on a dedicated goroutine, so one user's slow
// generation never blocks another's.
func (b *Bot) Run(ctx context.Context, pollTimeout int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.closeInboxes()
			b.wg.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				b.closeInboxes()
				b.wg.Wait()
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID

	b.mu.Lock()
	inbox, ok := b.inboxes[userID]
	if !ok {
		inbox = make(chan tgbotapi.Update, 16)
		b.inboxes[userID] = inbox
		b.wg.Add(1)
		go b.serve(ctx, inbox)
	}
	b.mu.Unlock()

	select {
	case inbox <- update:
	default:
		// The user is flooding faster than we handle; drop and tell them.
		b.logger.Warn("dropping update, user inbox full", "user", userID)
		b.reply(update.Message.Chat.ID, "One moment, I'm still working on your last message.")
	}
}

func (b *Bot) serve(ctx context.Context, inbox <-chan tgbotapi.Update) {
	defer b.wg.Done()
	for update := range inbox {
		b.handle(ctx, update.Message)
	}
}

func (b *Bot) closeInboxes() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, inbox := range b.inboxes {
		close(inbox)
		delete(b.inboxes, id)
	}
}

// reply sends plain text to a chat.
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("send failed", "chat", chatID, "error", err)
	}
}

// replyKeyboard sends text with a reply keyboard.
func (b *Bot) replyKeyboard(chatID int64, text string, kb tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("send failed", "chat", chatID, "error", err)
	}
}

// replyMarkdown sends Markdown-formatted text.
func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("send failed", "chat", chatID, "error", err)
	}
}

// SendReminder delivers a practice reminder. Called by the scheduler.
func (b *Bot) SendReminder(userID int64, text string) {
	b.reply(userID, text)
}
