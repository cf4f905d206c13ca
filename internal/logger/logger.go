// Package logger configures the process-wide slog logger and carries request
// ids through contexts.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// New builds a logger for cfg writing to w
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel(), AddSource: cfg.AddSource}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(cfg.Format, FormatJSON) {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h.WithAttrs(cfg.attrs()))
}

// Init installs New(cfg, w) as the slog default
func Init(cfg Config, w io.Writer) {
	slog.SetDefault(New(cfg, w))
}

type requestIDKey struct{}

// GenerateRequestID returns a fresh id for one request
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID attaches id to ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id attached to ctx, or "" when there is none
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns the default logger, tagged with the request id when ctx has one
func FromContext(ctx context.Context) *slog.Logger {
	if id := RequestID(ctx); id != "" {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}
