// Package logging builds the application's slog loggers and ties them to
// request IDs for tracing.
package logging

import (
	"context"
	"log/slog"
	"os"

	"monfluxrss/internal/handler/http/requestid"
)

// NewLogger returns a JSON logger writing to stdout. The level comes from
// the LOG_LEVEL environment variable (debug, info, warn, error); anything
// else falls back to info. Source locations are attached below warn level
// so debug runs show where each line came from.
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	})

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a logger carrying the request ID found in ctx,
// or the logger unchanged when the context has none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
