package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSender delivers messages through the Telegram Bot API with HTML
// markup and link previews disabled.
type TelegramSender struct {
	api telegramAPI
}

// NewTelegramSender wraps a Telegram Bot API client as a Sender.
func NewTelegramSender(api telegramAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

// SendMessage sends a text message to the given chat.
func (s *TelegramSender) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}
