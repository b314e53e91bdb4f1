package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL  string
	StateDBPath string
	LogLevel    string
	HTTPTimeout time.Duration
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid TOWTU_API_URL %q: must be an absolute http(s) URL", c.APIBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid TOWTU_API_URL scheme %q: must be http or https", u.Scheme)
	}
	if c.StateDBPath == "" {
		return fmt.Errorf("TOWTU_STATE_DB is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid TOWTU_HTTP_TIMEOUT %s: must be positive", c.HTTPTimeout)
	}
	return nil
}

func Load() Config {
	return Config{
		APIBaseURL:  envOrDefault("TOWTU_API_URL", "http://localhost:8000/api"),
		StateDBPath: envOrDefault("TOWTU_STATE_DB", defaultStateDBPath()),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		HTTPTimeout: envDuration("TOWTU_HTTP_TIMEOUT", 30*time.Second),
	}
}

func defaultStateDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "towtu.db"
	}
	return filepath.Join(configDir, "towtu", "state.db")
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
