// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/fieldquest/internal/domain"
	"github.com/samdwyer/fieldquest/internal/logger"
)

// Store drivers.
const (
	DriverBbolt  = "bbolt"
	DriverSqlite = "sqlite"
	DriverMemory = "memory"
)

// Config holds everything cmd/fieldquest needs to start a session.
type Config struct {
	Seed        int64  `env:"FIELDQUEST_SEED" envDefault:"0"`
	StoreDriver string `env:"FIELDQUEST_STORE_DRIVER" envDefault:"bbolt"`
	StorePath   string `env:"FIELDQUEST_STORE_PATH" envDefault:"fieldquest.db"`
	PlayerName  string `env:"FIELDQUEST_PLAYER_NAME" envDefault:"Hero"`

	Environment string `env:"FIELDQUEST_ENV" envDefault:"dev"`
	LogLevel    string `env:"FIELDQUEST_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"FIELDQUEST_LOG_FORMAT" envDefault:"text"`
	LogFile     string `env:"FIELDQUEST_LOG_FILE" envDefault:"fieldquest.log"`

	MetricsAddr string `env:"FIELDQUEST_METRICS_ADDR"`

	Telemetry        bool   `env:"FIELDQUEST_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_FIELDQUEST_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_FIELDQUEST_DATASET" envDefault:"fieldquest"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be expressed as defaults.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverBbolt, DriverSqlite:
		if c.StorePath == "" {
			return fmt.Errorf("%w: store path is required for %s", domain.ErrInvalidInput, c.StoreDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown store driver %q", domain.ErrInvalidInput, c.StoreDriver)
	}
	return nil
}

// Logger returns the logger settings.
func (c Config) Logger(version string) logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = c.LogFormat
	cfg.Version = version
	cfg.Environment = c.Environment
	return cfg
}
