// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings. Every field can be set through a
// SQLQUEST_* environment variable or a .env file in the working directory.
type Config struct {
	// DBPath is the durable store file. Empty means the XDG default.
	DBPath string `env:"DB"`

	// QueryTimeout bounds a single learner execution.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT"`

	// LogMode is "dev" or "prod".
	LogMode string `env:"LOG_MODE"`

	// LogFile receives TUI logs. Empty disables TUI logging.
	LogFile string `env:"LOG_FILE"`

	HTTPAddr       string   `env:"HTTP_ADDR"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		QueryTimeout:   5 * time.Second,
		LogMode:        "dev",
		HTTPAddr:       "127.0.0.1:8080",
		AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	}
}

// Load reads dotenvPath (when present) and then the environment on top of
// DefaultConfig. Variables already set in the environment win over the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "SQLQUEST_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.QueryTimeout <= 0 {
		return Config{}, fmt.Errorf("query timeout must be positive, got %s", cfg.QueryTimeout)
	}
	return cfg, nil
}
