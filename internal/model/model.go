// Package model defines the domain types used across the application.
package model

import "time"

// Comment is a top-level YouTube comment as returned by the comment
// threads listing, newest first.
type Comment struct {
	ID          string
	VideoID     string
	Author      string
	AuthorURL   string
	Text        string
	PublishedAt time.Time
}

// SeenComment records that a comment has already been announced for a
// channel. A comment ID is recorded at most once per channel and is
// never updated or expired.
type SeenComment struct {
	ChannelID string
	CommentID string
	SeenAt    time.Time
}

// Channel is a tracked YouTube channel fanned out to one Telegram chat.
// The same channel may appear with several chats; the seen-set is
// shared across them because it is keyed by channel only.
type Channel struct {
	ChannelID string
	ChatID    int64
	Locale    string
}
