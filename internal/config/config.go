// Package config loads the runtime settings of the service from the
// environment, optionally preloaded from a .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service.
type Config struct {
	// Address is the TCP address the HTTP server listens on.
	Address string `env:"ADDRESS" envDefault:":8080"`

	// DatabaseDSN is the sqlite data source name.
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"calc_service.db"`

	// TokenSecret signs and verifies session tokens. Must be overridden
	// outside local development.
	TokenSecret string `env:"TOKEN_SECRET" envDefault:"change-me-in-production"`

	// TokenDuration is how long an issued token stays valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"30m"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional .env file and parses the environment into a
// Config. A missing .env file is not an error: the environment may already
// be populated.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
