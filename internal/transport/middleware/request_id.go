package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/surovp/tg-bot-feedback/internal/domain"
	"github.com/surovp/tg-bot-feedback/pkg/ctxutil"
)

// RequestID tags the context with a fresh request ID and the update's
// author.
func RequestID() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, upd domain.Update) error {
			ctx = ctxutil.WithRequestID(ctx, uuid.New().String())
			ctx = ctxutil.WithUserID(ctx, int64(upd.Author.ID))
			return next(ctx, upd)
		}
	}
}
