package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and turns the panic into a returned error so the
// worker keeps serving other updates.
func Recovery(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, upd domain.Update) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := debug.Stack()
					logger.ErrorContext(ctx, "panic recovered",
						slog.Any("error", rec),
						slog.String("stack", string(stack)),
						slog.String("kind", upd.Kind.String()),
						slog.String("user_id", upd.Author.ID.String()),
					)
					err = fmt.Errorf("panic: %v", rec)
				}
			}()
			return next(ctx, upd)
		}
	}
}
