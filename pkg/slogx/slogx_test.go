package slogx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewLeavesDefaultLoggerAlone(t *testing.T) {
	before := slog.Default()

	logger := New(Config{Service: "nomina-portal", Env: "prod", Level: "info"})
	require.NotNil(t, logger)
	require.NotSame(t, before, logger)
	require.Same(t, before, slog.Default())
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), FromContext(context.Background()))

	logger := New(Config{Service: "nomina-portal", Format: "text"})
	ctx := WithContext(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}
