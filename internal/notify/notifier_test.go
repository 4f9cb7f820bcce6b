package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"comments_bot/internal/model"
)

type sentMessage struct {
	ChatID int64
	Text   string
}

type fakeSender struct {
	messages []sentMessage
	failText string
}

func (f *fakeSender) SendMessage(chatID int64, text string) error {
	f.messages = append(f.messages, sentMessage{ChatID: chatID, Text: text})
	if f.failText != "" && strings.Contains(text, f.failText) {
		return errors.New("telegram: bad request")
	}
	return nil
}

type fakePacer struct {
	waits int
}

func (f *fakePacer) Wait(_ context.Context) error {
	f.waits++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifyEmptySendsSingleFallback(t *testing.T) {
	sender := &fakeSender{}
	pacer := &fakePacer{}
	n := New(sender, pacer, testLogger())

	if err := n.Notify(context.Background(), 42, "en", nil, nil); err != nil {
		t.Fatalf("notify: %v", err)
	}

	want := []sentMessage{{ChatID: 42, Text: "No new comments"}}
	if diff := cmp.Diff(want, sender.messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifyEmptyUsesLocale(t *testing.T) {
	sender := &fakeSender{}
	n := New(sender, &fakePacer{}, testLogger())

	if err := n.Notify(context.Background(), 42, "ru", nil, nil); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if sender.messages[0].Text != "Новых комментариев нет" {
		t.Errorf("unexpected text: %s", sender.messages[0].Text)
	}
}

func TestNotifySendsOneMessagePerComment(t *testing.T) {
	sender := &fakeSender{}
	pacer := &fakePacer{}
	n := New(sender, pacer, testLogger())

	comments := []model.Comment{
		{ID: "c1", VideoID: "v1", Author: "Alice", Text: "first"},
		{ID: "c2", VideoID: "v1", Author: "Bob", Text: "second"},
		{ID: "c3", VideoID: "v2", Author: "Carol", Text: "third"},
	}
	titles := map[string]string{"v1": "First video", "v2": "Second video"}

	if err := n.Notify(context.Background(), 42, "en", comments, titles); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if len(sender.messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(sender.messages))
	}
	if pacer.waits != 3 {
		t.Errorf("expected 3 pacer waits, got %d", pacer.waits)
	}

	// Delivery order matches the new-items order.
	for i, wantID := range []string{"c1", "c2", "c3"} {
		if !strings.Contains(sender.messages[i].Text, "lc="+wantID) {
			t.Errorf("message %d should reference %s: %s", i, wantID, sender.messages[i].Text)
		}
	}
	if !strings.Contains(sender.messages[0].Text, "Alice") ||
		!strings.Contains(sender.messages[0].Text, "First video") {
		t.Errorf("first message missing author or title: %s", sender.messages[0].Text)
	}
}

func TestNotifyFailedSendDoesNotCancelLaterSends(t *testing.T) {
	sender := &fakeSender{failText: "lc=c1"}
	n := New(sender, &fakePacer{}, testLogger())

	comments := []model.Comment{
		{ID: "c1", VideoID: "v1", Author: "Alice", Text: "first"},
		{ID: "c2", VideoID: "v1", Author: "Bob", Text: "second"},
	}
	titles := map[string]string{"v1": "First video"}

	err := n.Notify(context.Background(), 42, "en", comments, titles)
	if err == nil {
		t.Fatal("expected delivery error")
	}
	if len(sender.messages) != 2 {
		t.Errorf("expected both sends attempted, got %d", len(sender.messages))
	}
}

func TestFormatCommentMissingTitlePlaceholder(t *testing.T) {
	c := model.Comment{ID: "c1", VideoID: "v-gone", Author: "Alice", Text: "hello"}

	got := FormatComment("en", c, map[string]string{})
	if !strings.Contains(got, "unknown video") {
		t.Errorf("expected placeholder title, got: %s", got)
	}

	got = FormatComment("ru", c, nil)
	if !strings.Contains(got, "неизвестное видео") {
		t.Errorf("expected localized placeholder, got: %s", got)
	}
}

func TestPacerSpacesSends(t *testing.T) {
	pacer := NewPacer(20 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := pacer.Wait(ctx); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	elapsed := time.Since(start)

	// First send passes immediately, the next two are spaced one interval apart.
	if elapsed < 40*time.Millisecond {
		t.Errorf("expected at least 40ms for 3 paced sends, got %v", elapsed)
	}
}
