//go:build !notrace

// Package tracing provides the build-tag-gated trace logging the tree
// builder uses to explain tag-omission and phrasing-guard decisions.
package tracing

import (
	"context"
	"log/slog"
	"runtime"
)

type traceLoggerKey struct{}

var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger attaches tlog to ctx for the tree builder's trace
// calls to pick up. If ctx already carries a trace logger, it is left
// untouched.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}
		return tlog
	}
	return nullLogger
}

// TraceEvent logs a structured tag-omission/phrasing-guard decision.
// With no logger installed on ctx this is a cheap no-op through
// nullLogger; built with -tags notrace it compiles away entirely (see
// trace_notrace.go).
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
