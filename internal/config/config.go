// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Values come from environment
// variables, optionally seeded from a .env file in the working directory.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `env:"MEALMAX_DB" envDefault:"mealmax.db"`

	// ListenAddr is the HTTP API bind address for the serve command.
	ListenAddr string `env:"MEALMAX_LISTEN" envDefault:":8080"`

	// RandomURL is the random.org decimal-fractions endpoint.
	RandomURL string `env:"MEALMAX_RANDOM_URL" envDefault:"https://www.random.org/decimal-fractions/"`

	// RandomTimeout bounds each randomness request.
	RandomTimeout time.Duration `env:"MEALMAX_RANDOM_TIMEOUT" envDefault:"5s"`

	// LocalRandom switches battles to a locally seeded generator instead
	// of random.org. Useful offline; the draw is still uniform in [0,1).
	LocalRandom bool `env:"MEALMAX_LOCAL_RANDOM" envDefault:"false"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
