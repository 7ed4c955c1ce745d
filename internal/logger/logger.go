package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultLogFile is used when Output is "file".
const DefaultLogFile = "triage-warden.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// OpenOutput resolves cfg.Output to a writer. The returned close func is never nil.
func OpenOutput(cfg Config) (io.Writer, func(), error) {
	switch cfg.Output {
	case "", "stdout":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	case "file":
		f, err := os.OpenFile(DefaultLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return os.Stdout, func() {}, fmt.Errorf("failed to open log file %s: %w", DefaultLogFile, err)
		}
		return f, func() { _ = f.Close() }, nil
	default:
		return os.Stdout, func() {}, fmt.Errorf("unknown log output %q", cfg.Output)
	}
}

// NewLogger initializes a new slog logger based on the provided configuration.
// Unknown levels fall back to info.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stdout
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler).With("service", "triage-warden")
}
