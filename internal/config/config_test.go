package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, name := range []string{
		"TELEGRAM_BOT_TOKEN", "GOOGLE_API_KEY", "DATABASE_PATH",
		"LOG_LEVEL", "DEFAULT_LOCALE", "ALLOWED_USERS",
	} {
		t.Setenv(name, "")
	}
	for name, value := range env {
		t.Setenv(name, value)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		required []string
		want     *Config
		wantErr  bool
	}{
		{
			name:     "missing required var",
			env:      map[string]string{},
			required: []string{"TELEGRAM_BOT_TOKEN"},
			wantErr:  true,
		},
		{
			name:     "token only, defaults applied",
			env:      map[string]string{"TELEGRAM_BOT_TOKEN": "test-token"},
			required: []string{"TELEGRAM_BOT_TOKEN"},
			want: &Config{
				TelegramBotToken: "test-token",
				DatabasePath:     "./data/bot.db",
				LogLevel:         "info",
				DefaultLocale:    "en",
				AllowedUsers:     nil,
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN": "tok",
				"GOOGLE_API_KEY":     "key",
				"DATABASE_PATH":      "/tmp/bot.db",
				"LOG_LEVEL":          "debug",
				"DEFAULT_LOCALE":     "ru",
				"ALLOWED_USERS":      "111,222,333",
			},
			required: []string{"TELEGRAM_BOT_TOKEN", "GOOGLE_API_KEY"},
			want: &Config{
				TelegramBotToken: "tok",
				GoogleAPIKey:     "key",
				DatabasePath:     "/tmp/bot.db",
				LogLevel:         "debug",
				DefaultLocale:    "ru",
				AllowedUsers:     []int64{111, 222, 333},
			},
		},
		{
			name: "invalid allowed user",
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN": "tok",
				"ALLOWED_USERS":      "111,abc",
			},
			required: []string{"TELEGRAM_BOT_TOKEN"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			got, err := Load(tt.required...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadListsAllMissingNames(t *testing.T) {
	setEnv(t, nil)

	_, err := Load("TELEGRAM_BOT_TOKEN", "GOOGLE_API_KEY")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{"TELEGRAM_BOT_TOKEN", "GOOGLE_API_KEY"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s: %v", name, err)
		}
	}
}

func TestIsUserAllowed(t *testing.T) {
	open := &Config{}
	if !open.IsUserAllowed(1234) {
		t.Error("empty allow list should permit everyone")
	}

	restricted := &Config{AllowedUsers: []int64{10, 20}}
	if !restricted.IsUserAllowed(20) {
		t.Error("listed user should be allowed")
	}
	if restricted.IsUserAllowed(30) {
		t.Error("unlisted user should be denied")
	}
}
