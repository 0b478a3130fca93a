package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Frontend / backend selectors accepted by the demo application.
const (
	FrontendConsole  = "console"
	FrontendTelegram = "telegram"

	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// TelegramConfig holds the settings for the Telegram frontend.
type TelegramConfig struct {
	Token  string
	ChatID int64
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv      string
	Frontend    string
	Backend     string
	DatabaseURL string
	MetricsAddr string
	Telegram    TelegramConfig
}

// Load loads configuration from the environment, with an optional .env file
// feeding the process environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine; anything else is worth surfacing.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	bindings := map[string]string{
		"app.env":         "APP_ENV",
		"app.frontend":    "TODO_FRONTEND",
		"app.backend":     "TODO_BACKEND",
		"database.url":    "DATABASE_URL",
		"metrics.addr":    "METRICS_ADDR",
		"telegram.token":  "TELEGRAM_TOKEN",
		"telegram.chatid": "TELEGRAM_CHAT_ID",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	v.SetDefault("app.env", "dev")
	v.SetDefault("app.frontend", FrontendConsole)
	v.SetDefault("app.backend", BackendMemory)

	cfg := Config{
		AppEnv:      v.GetString("app.env"),
		Frontend:    v.GetString("app.frontend"),
		Backend:     v.GetString("app.backend"),
		DatabaseURL: v.GetString("database.url"),
		MetricsAddr: v.GetString("metrics.addr"),
		Telegram: TelegramConfig{
			Token:  v.GetString("telegram.token"),
			ChatID: v.GetInt64("telegram.chatid"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Frontend {
	case FrontendConsole:
	case FrontendTelegram:
		if c.Telegram.Token == "" {
			return errors.New("TELEGRAM_TOKEN is required for the telegram frontend")
		}
		if c.Telegram.ChatID == 0 {
			return errors.New("TELEGRAM_CHAT_ID is required for the telegram frontend")
		}
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}

	switch c.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	return nil
}
