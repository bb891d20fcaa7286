package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// Config represents the full application configuration surface.
type Config struct {
	Format   FormatConfig
	Promo    PromoConfig
	Render   RenderConfig
	Snapshot SnapshotConfig
	Log      LogConfig
}

// FormatConfig controls how prices are displayed.
type FormatConfig struct {
	CurrencySymbol string
	Locale         language.Tag
}

// PromoConfig holds the variant classification settings.
type PromoConfig struct {
	NewReleaseWindowDays int
}

// RenderConfig holds options for building and rendering cards.
type RenderConfig struct {
	Workers int
}

// SnapshotConfig holds headless browser options.
type SnapshotConfig struct {
	ChromePath string
	Timeout    time.Duration
	MaxDim     int
	Quality    int
}

// LogConfig holds logger options.
type LogConfig struct {
	Level string
}

// Load materializes a Config from environment variables. Any .env file must
// already have been applied to the environment by the caller.
func Load() (*Config, error) {
	locale, err := language.Parse(getenvWithDefault("LOCALE", "en-US"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE: %w", err)
	}

	windowDays, err := getenvInt("NEW_RELEASE_WINDOW_DAYS", 30)
	if err != nil {
		return nil, err
	}
	workers, err := getenvInt("RENDER_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	maxDim, err := getenvInt("SNAPSHOT_MAX_DIM", 800)
	if err != nil {
		return nil, err
	}
	quality, err := getenvInt("SNAPSHOT_QUALITY", 75)
	if err != nil {
		return nil, err
	}
	timeout, err := time.ParseDuration(getenvWithDefault("SNAPSHOT_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Format: FormatConfig{
			CurrencySymbol: getenvWithDefault("CURRENCY_SYMBOL", "$"),
			Locale:         locale,
		},
		Promo: PromoConfig{
			NewReleaseWindowDays: windowDays,
		},
		Render: RenderConfig{
			Workers: workers,
		},
		Snapshot: SnapshotConfig{
			ChromePath: os.Getenv("CHROME_PATH"),
			Timeout:    timeout,
			MaxDim:     maxDim,
			Quality:    quality,
		},
		Log: LogConfig{
			Level: strings.ToLower(getenvWithDefault("LOG_LEVEL", "info")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that configuration values are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch {
	case c.Format.CurrencySymbol == "":
		return errors.New("CURRENCY_SYMBOL must not be empty")
	case c.Promo.NewReleaseWindowDays <= 0:
		return errors.New("NEW_RELEASE_WINDOW_DAYS must be positive")
	case c.Render.Workers <= 0:
		return errors.New("RENDER_WORKERS must be positive")
	case c.Snapshot.Timeout <= 0:
		return errors.New("SNAPSHOT_TIMEOUT must be positive")
	case c.Snapshot.MaxDim <= 0:
		return errors.New("SNAPSHOT_MAX_DIM must be positive")
	case c.Snapshot.Quality < 1 || c.Snapshot.Quality > 100:
		return errors.New("SNAPSHOT_QUALITY must be between 1 and 100")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
