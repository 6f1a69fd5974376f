package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/knob"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven demo configuration.
type Config struct {
	// Theme is a YAML theme file applied when no --theme flag is given.
	Theme string `envconfig:"KNOB_THEME"`

	// LogLevel enables knob's internal logging when set (debug, info,
	// warn, error). Empty keeps the library silent.
	LogLevel string `envconfig:"KNOB_LOG_LEVEL" default:""`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}

// setupLogging routes knob's internal diagnostics to stderr at the
// configured level.
func setupLogging(level string) error {
	if level == "" {
		return nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid KNOB_LOG_LEVEL %q: %w", level, err)
	}

	knob.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})))
	return nil
}
