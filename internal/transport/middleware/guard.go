package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/surovp/tg-bot-feedback/internal/domain"
	"github.com/surovp/tg-bot-feedback/internal/service/access"
)

const (
	msgBannedNotice      = "🚫 Your account is blocked."
	msgMaintenanceNotice = "🔧 The bot is under maintenance."
)

type admitter interface {
	Admit(userID domain.UserID, text string) access.Decision
}

type notifier interface {
	Send(ctx context.Context, chatID int64, msg domain.OutMessage) error
}

type denialRecorder interface {
	AccessDenied(reason domain.DenyReason)
}

// Guard returns middleware that stops messages from banned users and, in
// maintenance mode, from non-admins. The sender gets a notice and the
// update never reaches next. Callback queries pass through; their
// handlers check permissions themselves.
func Guard(logger *slog.Logger, g admitter, n notifier, rec denialRecorder) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, upd domain.Update) error {
			if upd.Kind == domain.UpdateKindCallback {
				return next(ctx, upd)
			}

			d := g.Admit(upd.Author.ID, upd.Text)
			if d.Allowed {
				return next(ctx, upd)
			}

			rec.AccessDenied(d.Reason)
			logger.InfoContext(ctx, "update denied",
				slog.String("user_id", upd.Author.ID.String()),
				slog.String("reason", d.Reason.String()),
			)

			if err := n.Send(ctx, upd.ChatID, domain.Text(denyNotice(d.Reason))); err != nil {
				return fmt.Errorf("middleware.Guard: notify %s: %w", upd.Author.ID, err)
			}
			return nil
		}
	}
}

func denyNotice(reason domain.DenyReason) string {
	if reason == domain.DenyMaintenance {
		return msgMaintenanceNotice
	}
	return msgBannedNotice
}
