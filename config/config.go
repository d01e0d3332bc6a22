// config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = "8000"
	DefaultBaseURL         = "http://127.0.0.1:8000"
	DefaultOutput          = "nurse_notes.json"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Host            string
	Port            string
	BaseURL         string
	Output          string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Addr is the listen address built from Host and Port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads .env from the working directory when present and then the
// NOTES_* environment variables. Unset variables fall back to defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		Host:      getEnv("NOTES_HOST", DefaultHost),
		Port:      getEnv("NOTES_PORT", DefaultPort),
		BaseURL:   getEnv("NOTES_BASE_URL", DefaultBaseURL),
		Output:    getEnv("NOTES_OUTPUT", DefaultOutput),
		LogLevel:  getEnv("NOTES_LOG_LEVEL", DefaultLogLevel),
		LogFormat: getEnv("NOTES_LOG_FORMAT", DefaultLogFormat),
	}

	cfg.ShutdownTimeout = DefaultShutdownTimeout
	if raw := os.Getenv("NOTES_SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTES_SHUTDOWN_TIMEOUT %q: %w", raw, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that can also be overridden by flags after Load.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q: want json or console", c.LogFormat)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("invalid shutdown timeout %s", c.ShutdownTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
