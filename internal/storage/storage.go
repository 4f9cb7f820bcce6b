// Package storage defines the persistence interface and its implementations.
package storage

import (
	"context"
	"time"

	"comments_bot/internal/model"
)

// RecentSeenLimit bounds how far back the seen-set lookup reaches. The
// reconciler only needs enough history to find the boundary against a
// freshly fetched page.
const RecentSeenLimit = 5

// Storage is the interface for all persistence operations.
type Storage interface {
	// RecentSeen returns the most recently recorded comment IDs for a
	// channel, most-recent-first, at most RecentSeenLimit of them.
	RecentSeen(ctx context.Context, channelID string) ([]string, error)
	// RecordSeen marks a comment as announced for a channel. Recording
	// the same comment twice is a no-op.
	RecordSeen(ctx context.Context, channelID, commentID string, seenAt time.Time) error

	AddChannel(ctx context.Context, ch model.Channel) error
	RemoveChannel(ctx context.Context, channelID string, chatID int64) (bool, error)
	ListChannels(ctx context.Context, chatID int64) ([]model.Channel, error)
	ListAllChannels(ctx context.Context) ([]model.Channel, error)

	Close() error
}
