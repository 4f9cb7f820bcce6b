// Package bot implements the interactive Telegram bot that manages the
// channel registry: free-text track/untrack/list commands plus a help
// fallback.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"comments_bot/internal/config"
	"comments_bot/internal/notify"
	"comments_bot/internal/storage"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot is the Telegram bot that handles registry commands.
type Bot struct {
	api    telegramAPI
	sender notify.Sender
	store  storage.Storage
	cfg    *config.Config
	log    *slog.Logger
}

// New creates a Bot with the given Telegram token, storage, and config.
func New(token string, store storage.Storage, cfg *config.Config, log *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	return &Bot{
		api:    api,
		sender: notify.NewTelegramSender(api),
		store:  store,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Run starts the bot's long-polling loop, blocking until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			if !b.cfg.IsUserAllowed(update.Message.From.ID) {
				b.reply(update.Message.Chat.ID, "Access denied.")
				continue
			}
			b.handleText(ctx, update.Message.Chat.ID, update.Message.Text)
		}
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if err := b.sender.SendMessage(chatID, text); err != nil {
		b.log.Error("send reply", "chat_id", chatID, "error", err)
	}
}
