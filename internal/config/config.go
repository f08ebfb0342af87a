// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config contains runtime configuration values. Credentials are environment
// input only; nothing is hardcoded in source.
type Config struct {
	NewsAPIKey      string
	NewsBaseURL     string
	SportsAPIKey    string
	SportsBaseURL   string
	Country         string
	RefreshSchedule string
	HTTPTimeout     time.Duration
}

const (
	defaultNewsBaseURL   = "https://newsapi.org/v2"
	defaultSportsBaseURL = "https://api.sportsdata.io/v3"
	defaultCountry       = "us"
	defaultSchedule      = "@every 5m"
	defaultTimeout       = 30 * time.Second
)

// Load builds a Config from NEWSDESK_* environment variables with sane
// defaults. NEWSDESK_NEWS_API_KEY is required; sports commands additionally
// need NEWSDESK_SPORTS_API_KEY.
func Load() (*Config, error) {
	cfg := &Config{
		NewsAPIKey:      os.Getenv("NEWSDESK_NEWS_API_KEY"),
		NewsBaseURL:     getenvDefault("NEWSDESK_NEWS_BASE_URL", defaultNewsBaseURL),
		SportsAPIKey:    os.Getenv("NEWSDESK_SPORTS_API_KEY"),
		SportsBaseURL:   getenvDefault("NEWSDESK_SPORTS_BASE_URL", defaultSportsBaseURL),
		Country:         getenvDefault("NEWSDESK_COUNTRY", defaultCountry),
		RefreshSchedule: getenvDefault("NEWSDESK_REFRESH_SCHEDULE", defaultSchedule),
		HTTPTimeout:     parseDurationDefault("NEWSDESK_HTTP_TIMEOUT", defaultTimeout),
	}

	if cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("NEWSDESK_NEWS_API_KEY is required")
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultTimeout
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
