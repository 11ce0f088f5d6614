package logger

import "log/slog"

// NewNope returns a logger that discards everything.
// It is the default of every component that accepts an optional logger.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
