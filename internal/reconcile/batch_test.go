package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"comments_bot/internal/model"
)

type fakeRunner struct {
	failFor map[string]error
	ran     []model.Channel
}

func (f *fakeRunner) Run(_ context.Context, ch model.Channel) error {
	f.ran = append(f.ran, ch)
	return f.failFor[ch.ChannelID]
}

func TestBatchIsolatesChannelFailures(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	channels := []model.Channel{
		{ChannelID: "UC-a", ChatID: 1, Locale: "en"},
		{ChannelID: "UC-b", ChatID: 2, Locale: "ru"},
		{ChannelID: "UC-c", ChatID: 3, Locale: "en"},
	}
	for _, ch := range channels {
		if err := store.AddChannel(ctx, ch); err != nil {
			t.Fatalf("add channel: %v", err)
		}
	}

	runner := &fakeRunner{failFor: map[string]error{"UC-b": errors.New("upstream down")}}
	batch := NewBatch(store, runner, testLogger())

	sum, err := batch.Run(ctx)
	if err != nil {
		t.Fatalf("batch run: %v", err)
	}

	if diff := cmp.Diff(Summary{Processed: 3, Failed: 1}, sum); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if len(runner.ran) != 3 {
		t.Errorf("expected all 3 channels attempted, got %d", len(runner.ran))
	}
	if sum.String() != "3 channels processed, 1 failed" {
		t.Errorf("unexpected summary string: %s", sum.String())
	}
}

func TestBatchEmptyRegistry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	runner := &fakeRunner{}
	batch := NewBatch(store, runner, testLogger())

	sum, err := batch.Run(ctx)
	if err != nil {
		t.Fatalf("batch run: %v", err)
	}
	if diff := cmp.Diff(Summary{}, sum); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}
