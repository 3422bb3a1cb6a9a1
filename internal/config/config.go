// Package config loads sentinel configuration from the environment.
// The Config is built once at startup and passed into constructors
// explicitly; nothing else reads the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/loykin/sentinel/internal/notify"
)

// DefaultHTTPTimeout bounds each Telegram delivery attempt.
const DefaultHTTPTimeout = 10 * time.Second

// Config carries everything the rest of the program needs.
type Config struct {
	BotToken    string        // Telegram bot token (required)
	ChatID      string        // destination chat id (required)
	APIBase     string        // Bot API base URL
	HTTPTimeout time.Duration // per-delivery HTTP timeout
	LogLevel    slog.Level    // diagnostic log level
	LogFile     string        // optional rotating diagnostic log file
	NoColor     bool          // disable ANSI colors on console logs
}

// FromEnv reads configuration from the process environment. The bot
// token and chat id are required; their absence is a startup error the
// caller must surface before any command execution begins.
func FromEnv() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("TG_API_BASE", notify.DefaultAPIBase)
	v.SetDefault("SENTINEL_HTTP_TIMEOUT", DefaultHTTPTimeout)
	v.SetDefault("SENTINEL_LOG_LEVEL", "info")

	token := v.GetString("TG_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TG_BOT_TOKEN is not set")
	}
	chatID := v.GetString("TG_CHAT_ID")
	if chatID == "" {
		return nil, fmt.Errorf("TG_CHAT_ID is not set")
	}
	level, err := parseLevel(v.GetString("SENTINEL_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	return &Config{
		BotToken:    token,
		ChatID:      chatID,
		APIBase:     v.GetString("TG_API_BASE"),
		HTTPTimeout: v.GetDuration("SENTINEL_HTTP_TIMEOUT"),
		LogLevel:    level,
		LogFile:     v.GetString("SENTINEL_LOG_FILE"),
		NoColor:     v.GetBool("SENTINEL_NO_COLOR"),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid SENTINEL_LOG_LEVEL %q", s)
}
