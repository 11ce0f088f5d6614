package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	// Level is the minimum level written (debug, info, warn, error).
	Level slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	// Format selects the output encoding: "json" or "text".
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// New creates a logger writing to stdout with optional context extractors.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newStdoutHandler(os.Stdout, cfg), extractors...))
}

// newStdoutHandler builds the base handler for cfg.
// Unknown formats fall back to JSON.
func newStdoutHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
