// Package reconcile implements one notification cycle for a tracked
// channel: fetch recent comments, diff against the seen-set, persist the
// new ones, resolve video titles, and hand off to the notifier.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"comments_bot/internal/model"
	"comments_bot/internal/storage"
	"comments_bot/internal/youtube"
)

// CommentSource lists recent comment threads and resolves video titles.
type CommentSource interface {
	ListRecentThreads(ctx context.Context, channelID string, maxResults int) ([]model.Comment, error)
	ListVideoTitles(ctx context.Context, ids []string) (map[string]string, error)
}

// Notifier delivers the new comments (or the "nothing new" message) to a chat.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, loc string, comments []model.Comment, titles map[string]string) error
}

// Reconciler runs the fetch-diff-persist-notify cycle.
type Reconciler struct {
	store    storage.Storage
	source   CommentSource
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

// New creates a Reconciler.
func New(store storage.Storage, source CommentSource, notifier Notifier, log *slog.Logger) *Reconciler {
	return &Reconciler{
		store:    store,
		source:   source,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// NewItems returns the leading run of fetched comments whose IDs are not in
// seen, stopping at the first already-seen comment. fetched is assumed
// newest-first, so anything behind a seen comment has been announced before
// or is too old to be inside the lookback window.
//
// A genuinely new comment ordered behind a seen one is intentionally not
// reported; if upstream ever returns out of order, such a comment is lost
// for good once it falls out of the lookback window.
func NewItems(seen []string, fetched []model.Comment) []model.Comment {
	seenSet := make(map[string]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	var fresh []model.Comment
	for _, comment := range fetched {
		if _, ok := seenSet[comment.ID]; ok {
			break
		}
		fresh = append(fresh, comment)
	}
	return fresh
}

// Run performs one reconciliation for a single tracked channel. Seen
// records are written before any delivery is attempted, so a failed send
// can never cause a comment to be announced twice. Delivery failures are
// returned but sibling sends within the batch still go out.
func (r *Reconciler) Run(ctx context.Context, ch model.Channel) error {
	seen, err := r.store.RecentSeen(ctx, ch.ChannelID)
	if err != nil {
		return fmt.Errorf("load seen-set for %s: %w", ch.ChannelID, err)
	}

	fetched, err := r.source.ListRecentThreads(ctx, ch.ChannelID, youtube.MaxResults)
	if err != nil {
		return fmt.Errorf("fetch comments for %s: %w", ch.ChannelID, err)
	}

	fresh := NewItems(seen, fetched)

	now := r.now()
	for _, comment := range fresh {
		if err := r.store.RecordSeen(ctx, ch.ChannelID, comment.ID, now); err != nil {
			return fmt.Errorf("record seen %s: %w", comment.ID, err)
		}
	}

	titles, err := r.source.ListVideoTitles(ctx, uniqueVideoIDs(fresh))
	if err != nil {
		return fmt.Errorf("fetch video titles for %s: %w", ch.ChannelID, err)
	}

	r.log.Debug("reconciled channel",
		"channel_id", ch.ChannelID, "chat_id", ch.ChatID, "new_comments", len(fresh))

	if err := r.notifier.Notify(ctx, ch.ChatID, ch.Locale, fresh, titles); err != nil {
		return fmt.Errorf("notify chat %d: %w", ch.ChatID, err)
	}
	return nil
}

func uniqueVideoIDs(comments []model.Comment) []string {
	seen := make(map[string]struct{}, len(comments))
	var ids []string
	for _, c := range comments {
		if _, ok := seen[c.VideoID]; ok {
			continue
		}
		seen[c.VideoID] = struct{}{}
		ids = append(ids, c.VideoID)
	}
	return ids
}
