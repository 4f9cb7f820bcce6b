package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"comments_bot/internal/model"
	"comments_bot/migrations"
)

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// RecentSeen returns the most recently recorded comment IDs for a channel,
// most-recent-first.
func (s *SQLite) RecentSeen(ctx context.Context, channelID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT comment_id FROM comments
		 WHERE channel_id = ?
		 ORDER BY timestamp DESC, comment_id DESC
		 LIMIT ?`,
		channelID, RecentSeenLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent seen: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan comment id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecordSeen marks a comment as announced. Duplicate inserts are ignored so
// the same comment appearing twice in one page cannot fail the run.
func (s *SQLite) RecordSeen(ctx context.Context, channelID, commentID string, seenAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO comments (channel_id, comment_id, timestamp) VALUES (?, ?, ?)`,
		channelID, commentID, seenAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record seen: %w", err)
	}
	return nil
}

// AddChannel registers a channel/chat pair for tracking.
func (s *SQLite) AddChannel(ctx context.Context, ch model.Channel) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO youtube_channels (channel_id, telegram_chat_id, locale) VALUES (?, ?, ?)`,
		ch.ChannelID, ch.ChatID, ch.Locale,
	)
	if err != nil {
		return fmt.Errorf("insert channel: %w", err)
	}
	return nil
}

// RemoveChannel drops a channel/chat pair. It reports whether a row existed.
func (s *SQLite) RemoveChannel(ctx context.Context, channelID string, chatID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM youtube_channels WHERE channel_id = ? AND telegram_chat_id = ?`,
		channelID, chatID,
	)
	if err != nil {
		return false, fmt.Errorf("delete channel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// ListChannels returns the channels tracked by one chat.
func (s *SQLite) ListChannels(ctx context.Context, chatID int64) ([]model.Channel, error) {
	return s.queryChannels(ctx,
		`SELECT channel_id, telegram_chat_id, locale FROM youtube_channels
		 WHERE telegram_chat_id = ? ORDER BY channel_id`, chatID)
}

// ListAllChannels returns every tracked channel/chat pair.
func (s *SQLite) ListAllChannels(ctx context.Context) ([]model.Channel, error) {
	return s.queryChannels(ctx,
		`SELECT channel_id, telegram_chat_id, locale FROM youtube_channels
		 ORDER BY channel_id, telegram_chat_id`)
}

func (s *SQLite) queryChannels(ctx context.Context, query string, args ...any) ([]model.Channel, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query channels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var channels []model.Channel
	for rows.Next() {
		var ch model.Channel
		if err := rows.Scan(&ch.ChannelID, &ch.ChatID, &ch.Locale); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}
