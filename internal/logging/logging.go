// Package logging builds the slog.Logger used by the planner binary.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"
)

const instrumentationName = "github.com/metinatakli/cinema-planner"

type options struct {
	level          slog.Level
	loggerProvider log.LoggerProvider
	version        string
}

type Option func(*options)

func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithLoggerProvider also sends every record to the OpenTelemetry logger
// provider.
func WithLoggerProvider(provider log.LoggerProvider) Option {
	return func(o *options) {
		o.loggerProvider = provider
	}
}

func WithVersion(version string) Option {
	return func(o *options) {
		o.version = version
	}
}

// New returns a logger writing text records to w.
func New(w io.Writer, opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&o)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: o.level}),
	}

	if o.loggerProvider != nil {
		handlers = append(handlers, otelslog.NewHandler(instrumentationName,
			otelslog.WithLoggerProvider(o.loggerProvider),
			otelslog.WithVersion(o.version),
		))
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}

	return slog.New(NewMultiHandler(handlers...))
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// MultiHandler is a slog.Handler that dispatches log records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{
		handlers: handlers,
	}
}

// Enabled reports whether any of the underlying handlers are enabled.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes the record to every handler enabled for its level. Errors
// from individual handlers are ignored.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		_ = handler.Handle(ctx, record.Clone())
	}
	return nil
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: handlers}
}
