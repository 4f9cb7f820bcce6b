// Command check runs one notification pass over all tracked channels and
// exits. It is meant to be invoked on a schedule (cron or a systemd timer).
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"comments_bot/internal/config"
	"comments_bot/internal/notify"
	"comments_bot/internal/reconcile"
	"comments_bot/internal/storage"
	"comments_bot/internal/youtube"
)

func main() {
	config.LoadEnvFile()

	cfg, err := config.Load("TELEGRAM_BOT_TOKEN", "GOOGLE_API_KEY")
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Error("create data directory", "path", dir, "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Error("open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Error("create bot api", "error", err)
		os.Exit(1)
	}

	yt := youtube.New(http.DefaultClient, cfg.GoogleAPIKey)
	notifier := notify.New(notify.NewTelegramSender(api), notify.NewPacer(time.Second), log)
	rec := reconcile.New(store, yt, notifier, log)
	batch := reconcile.NewBatch(store, rec, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sum, err := batch.Run(ctx)
	if err != nil {
		log.Error("batch run", "error", err)
		os.Exit(1)
	}

	log.Info("done", "summary", sum.String())
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
