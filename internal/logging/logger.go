// Package logging builds the daemon's zerolog logger and carries it in a context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel converts a level name (trace, debug, info, warn, error) to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// New creates a logger writing to cfg.Output in the configured format. Every
// extra writer receives the JSON encoding of each event, which is how the
// rotating log file is attached.
func New(cfg Config, extra ...io.Writer) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var primary io.Writer = out
	if cfg.Format != FormatJSON {
		primary = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	var w io.Writer = primary
	if len(extra) > 0 {
		w = zerolog.MultiLevelWriter(append([]io.Writer{primary}, extra...)...)
	}

	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues creates a stderr logger from string settings. Unknown
// values fall back to the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	if lvl, err := ParseLevel(level); err == nil {
		cfg.Level = lvl
	}
	switch format {
	case FormatJSON, FormatConsole:
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables, used before
// settings are loaded.
// WHKD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// WHKD_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("WHKD_LOG_LEVEL"), os.Getenv("WHKD_LOG_FORMAT"))
}
