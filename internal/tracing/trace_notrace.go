//go:build notrace

package tracing

import (
	"context"
	"log/slog"
)

// No-op implementations for builds with -tags notrace, so a
// production binary pays nothing for tracing.

type traceLoggerKey struct{}

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return ctx
}

func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
