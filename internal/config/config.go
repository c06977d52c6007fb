// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Environment variable names.
const (
	EnvNumThreads = "PETAB_NUM_THREADS"
	EnvLogLevel   = "PETAB_LOG_LEVEL"
	EnvLogFormat  = "PETAB_LOG_FORMAT"
)

// Config holds settings read once at startup.
type Config struct {
	// NumThreads is the number of conditions resolved concurrently.
	NumThreads int    `validate:"min=1,max=1024"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	LogFormat  string `validate:"oneof=text json"`
}

var validate = validator.New()

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	threads, err := getEnvInt(EnvNumThreads, 1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NumThreads: threads,
		LogLevel:   getEnv(EnvLogLevel, "info"),
		LogFormat:  getEnv(EnvLogFormat, "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, v)
	}

	return i, nil
}
