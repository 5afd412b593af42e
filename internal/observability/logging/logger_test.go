package logging

import (
	"context"
	"log/slog"
	"testing"

	"monfluxrss/internal/handler/http/requestid"
)

/*────────────────────  test cases  ────────────────────*/

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbeux", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_RespectsLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	logger := NewLogger()

	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be disabled at error level")
	}
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at error level")
	}
}

func TestNewLogger_DefaultsToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	logger := NewLogger()

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled by default")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be enabled by default")
	}
}

func TestWithRequestID(t *testing.T) {
	base := slog.Default()

	ctx := requestid.WithRequestID(context.Background(), "req-lecteur-42")
	if got := WithRequestID(ctx, base); got == base {
		t.Error("expected a derived logger when the context carries a request ID")
	}

	if got := WithRequestID(context.Background(), base); got != base {
		t.Error("expected the same logger when the context has no request ID")
	}
}
