// Package config reads the redirect service's startup settings from flags
// and environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// ErrInvalidConfig is returned when a setting has an unusable value.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings for one server process.
type Config struct {
	Port      string
	Addr      string
	LinksFile string
	LogLevel  string
	LogFormat string
}

func getEnvOrDefault(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load parses args (without the program name) with environment fallbacks
// taken from getenv.
func Load(args []string, getenv func(string) string) (*Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("shortlinks", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", "", "HTTP address to listen on, overrides PORT")
	fs.StringVar(&cfg.LinksFile, "links", getenv("SHORTLINKS_FILE"), "Path to a JSON link table, replaces the built-in table")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnvOrDefault(getenv, "LOG_LEVEL", "info"), "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnvOrDefault(getenv, "LOG_FORMAT", "text"), "Log format: text or json")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.Port = getEnvOrDefault(getenv, "PORT", "8080")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		if _, err := strconv.Atoi(c.Port); err != nil {
			return fmt.Errorf("%w: PORT %q is not a number", ErrInvalidConfig, c.Port)
		}
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// ListenAddr returns the address the server binds to.
func (c *Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return ":" + c.Port
}

// Logger builds the process logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
