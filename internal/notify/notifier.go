// Package notify renders and delivers per-comment Telegram notifications.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"comments_bot/internal/locale"
	"comments_bot/internal/model"
)

// Sender is the interface for sending Telegram messages.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Pacer gates outbound sends. Wait blocks until the next send is allowed.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer returns a Pacer that allows one send per interval, with the
// first send passing immediately. One message per second keeps the bot
// under Telegram throughput limits.
func NewPacer(interval time.Duration) Pacer {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Notifier delivers new-comment notifications to a chat.
type Notifier struct {
	sender Sender
	pacer  Pacer
	log    *slog.Logger
}

// New creates a Notifier.
func New(sender Sender, pacer Pacer, log *slog.Logger) *Notifier {
	return &Notifier{sender: sender, pacer: pacer, log: log}
}

// Notify sends one message per comment, paced by the Pacer, in the order
// given. An empty comments slice produces exactly one localized
// "no new comments" message. A failed send is logged and joined into the
// returned error; later sends are still attempted.
func (n *Notifier) Notify(ctx context.Context, chatID int64, loc string, comments []model.Comment, titles map[string]string) error {
	if len(comments) == 0 {
		if err := n.pacer.Wait(ctx); err != nil {
			return fmt.Errorf("wait pacer: %w", err)
		}
		if err := n.sender.SendMessage(chatID, locale.T(loc, "no_new_comments", nil)); err != nil {
			return fmt.Errorf("send no-new-comments: %w", err)
		}
		return nil
	}

	var errs []error
	for _, comment := range comments {
		if err := n.pacer.Wait(ctx); err != nil {
			errs = append(errs, fmt.Errorf("wait pacer: %w", err))
			break
		}

		msg := FormatComment(loc, comment, titles)
		if err := n.sender.SendMessage(chatID, msg); err != nil {
			n.log.Error("send notification", "chat_id", chatID, "comment_id", comment.ID, "error", err)
			errs = append(errs, fmt.Errorf("send comment %s: %w", comment.ID, err))
		}
	}
	return errors.Join(errs...)
}

// FormatComment renders the notification message for a single comment.
// A video missing from titles renders with a localized placeholder since
// the video may have been deleted between the two lookups.
func FormatComment(loc string, comment model.Comment, titles map[string]string) string {
	title, ok := titles[comment.VideoID]
	if !ok || title == "" {
		title = locale.T(loc, "unknown_video", nil)
	}
	return locale.T(loc, "new_comment", map[string]string{
		"author":     comment.Author,
		"text":       comment.Text,
		"videoTitle": title,
		"videoId":    comment.VideoID,
		"commentId":  comment.ID,
	})
}
