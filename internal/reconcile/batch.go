package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"comments_bot/internal/model"
	"comments_bot/internal/storage"
)

// Summary is the aggregate outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d channels processed, %d failed", s.Processed, s.Failed)
}

// ChannelRunner reconciles a single tracked channel.
type ChannelRunner interface {
	Run(ctx context.Context, ch model.Channel) error
}

// Batch drives one reconciliation pass over every tracked channel.
// Channels run sequentially, so two runs for the same channel can never
// interleave their seen-set reads and writes within one batch.
type Batch struct {
	store  storage.Storage
	runner ChannelRunner
	log    *slog.Logger
}

// NewBatch creates a Batch driver.
func NewBatch(store storage.Storage, runner ChannelRunner, log *slog.Logger) *Batch {
	return &Batch{store: store, runner: runner, log: log}
}

// Run reconciles all tracked channels. A failure in one channel is logged
// and counted; the remaining channels still run. Only a failure to list
// the registry itself aborts the batch.
func (b *Batch) Run(ctx context.Context) (Summary, error) {
	channels, err := b.store.ListAllChannels(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list tracked channels: %w", err)
	}

	var sum Summary
	for _, ch := range channels {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}
		sum.Processed++
		if err := b.runner.Run(ctx, ch); err != nil {
			sum.Failed++
			b.log.Error("reconcile channel",
				"channel_id", ch.ChannelID, "chat_id", ch.ChatID, "error", err)
		}
	}

	b.log.Info("batch finished", "processed", sum.Processed, "failed", sum.Failed)
	return sum, nil
}
