package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/surovp/tg-bot-feedback/internal/domain"
	"github.com/surovp/tg-bot-feedback/pkg/ctxutil"
)

type updateObserver interface {
	ObserveUpdate(kind domain.UpdateKind, err error, d time.Duration)
}

// Logger returns middleware that logs each update with kind, duration and
// context identifiers (request_id, user_id), and reports it to obs.
func Logger(logger *slog.Logger, obs updateObserver) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, upd domain.Update) error {
			start := time.Now()

			err := next(ctx, upd)

			duration := time.Since(start)
			obs.ObserveUpdate(upd.Kind, err, duration)

			attrs := []slog.Attr{
				slog.String("kind", upd.Kind.String()),
				slog.Int("update_id", upd.ID),
				slog.Duration("duration", duration),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.Int64("user_id", userID))
			}
			if upd.Command != "" {
				attrs = append(attrs, slog.String("command", upd.Command))
			}

			level := slog.LevelInfo
			if err != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.LogAttrs(ctx, level, "bot.update", attrs...)
			return err
		}
	}
}
