// Package logging wraps log/slog with context-carried attributes.
//
// Callers attach a component to the context once and pass that context to
// the level helpers:
//
//	ctx = logging.WithComponent(ctx, "ippo")
//	logging.Debug(ctx, "ippo stocked", slog.String("ippo_id", id))
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

type contextKey int

const componentKey contextKey = iota

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// ParseLevel maps a config value to a slog level. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}

// Init replaces the package logger with a text handler writing to w.
func Init(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithComponent returns a context whose log lines carry component.
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func log(ctx context.Context, level slog.Level, msg string, attrs ...any) {
	l := current()
	if !l.Enabled(ctx, level) {
		return
	}
	if component, ok := ctx.Value(componentKey).(string); ok {
		attrs = append([]any{slog.String("component", component)}, attrs...)
	}
	l.Log(ctx, level, msg, attrs...)
}

func Debug(ctx context.Context, msg string, attrs ...any) { log(ctx, slog.LevelDebug, msg, attrs...) }
func Info(ctx context.Context, msg string, attrs ...any)  { log(ctx, slog.LevelInfo, msg, attrs...) }
func Warn(ctx context.Context, msg string, attrs ...any)  { log(ctx, slog.LevelWarn, msg, attrs...) }
func Error(ctx context.Context, msg string, attrs ...any) { log(ctx, slog.LevelError, msg, attrs...) }
