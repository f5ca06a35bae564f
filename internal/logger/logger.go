// Package logger configures the application slog logger and provides request scoped loggers.
//
// Handlers and middleware should use ContextRequestLogger(r.Context()) rather than the
// application logger so that every line carries the request id, method and path.
// Extra attributes for the final "request completed" line can be added from anywhere in
// the call chain with ContextWithLogAttrs.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

// LevelNone disables logging (used by tests).
const LevelNone = slog.Level(1 << 20)

// ParseLogLevel converts a LOG_LEVEL value to a slog.Level. Unknown values default to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "none", "off":
		return LevelNone
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// InitLogger creates the application logger and installs it as the slog default.
//
// dev uses a colored human readable handler, every other environment logs JSON.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	return initLogger(os.Stdout, level, environment)
}

func initLogger(w io.Writer, level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	switch {
	case level >= LevelNone:
		handler = slog.DiscardHandler
	case environment == "dev":
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

type contextKey int

const (
	requestLoggerKey contextKey = iota
	logAttrsKey
)

// logAttrs collects attributes added during a request; the request logging middleware
// emits them on the completion line.
type logAttrs struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// ContextWithRequestLogger returns a copy of ctx carrying l.
func ContextWithRequestLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, requestLoggerKey, l)
}

// ContextRequestLogger returns the request scoped logger, or the default logger when
// ctx was not created by the request logging middleware.
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(requestLoggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// ContextWithLogAttrs adds attributes to the final request log line.
// It is a no-op outside a request handled by RequestLogging.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	holder, ok := ctx.Value(logAttrsKey).(*logAttrs)
	if !ok {
		return
	}
	holder.mu.Lock()
	holder.attrs = append(holder.attrs, attrs...)
	holder.mu.Unlock()
}

func contextWithLogAttrsHolder(ctx context.Context) (context.Context, *logAttrs) {
	holder := &logAttrs{}
	return context.WithValue(ctx, logAttrsKey, holder), holder
}

func (l *logAttrs) snapshot() []slog.Attr {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]slog.Attr, len(l.attrs))
	copy(out, l.attrs)
	return out
}
