// Package ctxutil carries per-update identifiers through context.Context.
package ctxutil

import "context"

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID stores the chat user ID of the update's author.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the author's chat user ID. Zero is not a valid
// Telegram user ID and reports false.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, _ := ctx.Value(userIDKey{}).(int64)
	return id, id != 0
}

// WithRequestID stores the ID that correlates log lines of one update.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
