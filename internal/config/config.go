// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	TelegramBotToken string
	GoogleAPIKey     string
	DatabasePath     string
	LogLevel         string
	DefaultLocale    string
	AllowedUsers     []int64
}

// LoadEnvFile reads a .env file into the process environment outside of
// production. A missing file is fine.
func LoadEnvFile() {
	if os.Getenv("APP_ENV") == "production" {
		return
	}
	_ = godotenv.Load()
}

// Load reads configuration from environment variables. The listed variables
// are required; every missing name is reported in a single error.
func Load(required ...string) (*Config, error) {
	var missing []string
	for _, name := range required {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing env var: %s", strings.Join(missing, ", "))
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data/bot.db"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	defaultLocale := os.Getenv("DEFAULT_LOCALE")
	if defaultLocale == "" {
		defaultLocale = "en"
	}

	var allowedUsers []int64
	if raw := os.Getenv("ALLOWED_USERS"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			uid, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid user ID %q in ALLOWED_USERS: %w", s, err)
			}
			allowedUsers = append(allowedUsers, uid)
		}
	}

	return &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		DatabasePath:     dbPath,
		LogLevel:         logLevel,
		DefaultLocale:    defaultLocale,
		AllowedUsers:     allowedUsers,
	}, nil
}

// IsUserAllowed checks whether a user ID is in the allow list.
// Returns true if the allow list is empty (all users permitted).
func (c *Config) IsUserAllowed(userID int64) bool {
	if len(c.AllowedUsers) == 0 {
		return true
	}
	for _, id := range c.AllowedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
