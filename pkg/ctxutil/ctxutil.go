// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	emailKey     ctxKey = "email"
	requestIDKey ctxKey = "request_id"
)

// WithEmail stores the verified email claim of the caller in the context.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromCtx extracts the verified email from the context.
// Returns "" and false if the value is missing, blank, or wrong type.
func EmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", false
	}
	return email, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
