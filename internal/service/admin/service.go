// Package admin implements the operator commands: ban management,
// maintenance mode and session flushing.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// messenger delivers outbound messages and callback answers.
type messenger interface {
	Send(ctx context.Context, chatID int64, msg domain.OutMessage) error
	EditMessage(ctx context.Context, chatID int64, messageID int, msg domain.OutMessage) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}

// accessState is the mutable ban set and maintenance flag.
type accessState interface {
	Ban(id domain.UserID) bool
	Unban(id domain.UserID) bool
	Banned() []domain.UserID
	ToggleMaintenance() bool
}

// adminSet is the static set of operators.
type adminSet interface {
	IsAdmin(id domain.UserID) bool
	Admins() []domain.UserID
}

// sessionStore is the in-memory conversation store.
type sessionStore interface {
	Flush() int
}

type recorder interface {
	NotifyFailed()
	SetSessions(n int)
}

// Service executes admin commands. Every operation checks that the caller
// is an admin before mutating anything.
type Service struct {
	log      *slog.Logger
	state    accessState
	admins   adminSet
	sessions sessionStore
	msgr     messenger
	metrics  recorder
}

// NewService creates an admin Service.
func NewService(
	log *slog.Logger,
	state accessState,
	admins adminSet,
	sessions sessionStore,
	msgr messenger,
	metrics recorder,
) *Service {
	return &Service{
		log:      log.With("service", "admin"),
		state:    state,
		admins:   admins,
		sessions: sessions,
		msgr:     msgr,
		metrics:  metrics,
	}
}

// authorize reports whether the author of upd is an admin. Non-admins get
// the permission notice and nothing else happens.
func (s *Service) authorize(ctx context.Context, upd domain.Update) (bool, error) {
	if s.admins.IsAdmin(upd.Author.ID) {
		return true, nil
	}

	s.log.WarnContext(ctx, "admin command denied",
		slog.String("user_id", upd.Author.ID.String()),
		slog.String("command", upd.Command),
		slog.String("error", domain.ErrForbidden.Error()),
	)
	return false, s.reply(ctx, upd, domain.Text(msgDenied))
}

func (s *Service) reply(ctx context.Context, upd domain.Update, msg domain.OutMessage) error {
	if err := s.msgr.Send(ctx, upd.ChatID, msg); err != nil {
		return fmt.Errorf("admin: reply to %s: %w", upd.Author.ID, err)
	}
	return nil
}

// notifyAdmins delivers text to every admin. A failed delivery is logged
// and counted; it never stops delivery to the remaining admins.
func (s *Service) notifyAdmins(ctx context.Context, text string) {
	for _, id := range s.admins.Admins() {
		if err := s.msgr.Send(ctx, int64(id), domain.Text(text)); err != nil {
			s.metrics.NotifyFailed()
			s.log.WarnContext(ctx, "admin notification failed",
				slog.String("admin_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
