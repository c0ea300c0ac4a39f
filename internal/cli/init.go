// Package cli provides the process bootstrap shared by commands: env
// loading, logger setup, configuration, and opening a session over the
// configured backend.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"iexpense/internal/config"
	"iexpense/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// SetupLogger builds the application logger writing to w (stderr when nil)
// and installs it as the slog default. Unknown levels fall back to info.
func SetupLogger(level string, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, _ := log.ParseLevel(level)
	logger := log.New(log.Config{Level: lvl, Component: log.ComponentApp, Output: w})
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// OpenFromEnv loads and validates the configuration, then opens a session
// over it. Nothing touches the filesystem before this is called.
func OpenFromEnv(ctx context.Context, logger *log.Logger) (*Session, error) {
	cfg, err := LoadAndValidateConfig()
	if err != nil {
		return nil, err
	}
	return Open(ctx, cfg, logger)
}
