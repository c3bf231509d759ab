package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is private so no other package can collide with the entry.
type ctxKey struct{}

// WithLogger attaches logger to ctx. The CLI does this once after
// resolving verbosity, so the run pipeline logs through the same
// configured logger without threading it explicitly.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx, falling back to the
// package default when none is attached. Never returns nil.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
