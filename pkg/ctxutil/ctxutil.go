// Package ctxutil carries request-scoped values through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const correlationIDKey ctxKey = "correlation_id"

// NewCorrelationID returns a fresh random correlation id.
func NewCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID stores the correlation id that ties together every log
// line of one logical operation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromCtx extracts the correlation id from the context.
// Returns an empty string if absent.
func CorrelationIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// EnsureCorrelationID returns ctx unchanged when it already carries a
// correlation id, and otherwise attaches a new one.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if CorrelationIDFromCtx(ctx) != "" {
		return ctx
	}
	return WithCorrelationID(ctx, NewCorrelationID())
}
