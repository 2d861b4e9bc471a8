package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Ban handles "/ban <id>". Banning an already banned user only repeats the
// confirmation.
func (s *Service) Ban(ctx context.Context, upd domain.Update) error {
	if ok, err := s.authorize(ctx, upd); !ok {
		return err
	}

	target, err := targetID(upd.Args)
	if err != nil {
		return s.reply(ctx, upd, domain.Text(msgBanUsage))
	}

	added := s.state.Ban(target)
	s.log.InfoContext(ctx, "user banned",
		slog.String("target_id", target.String()),
		slog.String("admin_id", upd.Author.ID.String()),
		slog.Bool("added", added),
	)

	if err := s.reply(ctx, upd, domain.Text(fmt.Sprintf(msgBanned, target))); err != nil {
		return err
	}
	s.notifyAdmins(ctx, fmt.Sprintf(notifyBanned, target, upd.Author.ID))
	return nil
}

// Unban handles "/unban <id>". Admins are notified only when the user was
// actually banned.
func (s *Service) Unban(ctx context.Context, upd domain.Update) error {
	if ok, err := s.authorize(ctx, upd); !ok {
		return err
	}

	target, err := targetID(upd.Args)
	if err != nil {
		return s.reply(ctx, upd, domain.Text(msgUnbanUsage))
	}

	if !s.state.Unban(target) {
		return s.reply(ctx, upd, domain.Text(fmt.Sprintf(msgNotBanned, target)))
	}

	s.log.InfoContext(ctx, "user unbanned",
		slog.String("target_id", target.String()),
		slog.String("admin_id", upd.Author.ID.String()),
	)
	if err := s.reply(ctx, upd, domain.Text(fmt.Sprintf(msgUnbanned, target))); err != nil {
		return err
	}
	s.notifyAdmins(ctx, fmt.Sprintf(notifyUnbanned, target, upd.Author.ID))
	return nil
}

// ListBanned handles "/blacklist": banned ids in ascending order, each with
// an inline unban button.
func (s *Service) ListBanned(ctx context.Context, upd domain.Update) error {
	if ok, err := s.authorize(ctx, upd); !ok {
		return err
	}

	banned := s.state.Banned()
	if len(banned) == 0 {
		return s.reply(ctx, upd, domain.Text(msgBlacklistEmpty))
	}

	lines := make([]string, len(banned))
	buttons := make([]domain.Button, len(banned))
	for i, id := range banned {
		lines[i] = fmt.Sprintf(msgBlacklistItem, id)
		buttons[i] = domain.Button{
			Label: fmt.Sprintf(msgUnbanButton, id),
			Data:  UnbanCallbackPrefix + id.String(),
		}
	}

	text := fmt.Sprintf(msgBlacklist, len(banned), strings.Join(lines, "\n"))
	return s.reply(ctx, upd, domain.WithInlineButtons(text, buttons...))
}

// ToggleMaintenance handles "/maintenance".
func (s *Service) ToggleMaintenance(ctx context.Context, upd domain.Update) error {
	if ok, err := s.authorize(ctx, upd); !ok {
		return err
	}

	on := s.state.ToggleMaintenance()
	status := maintenanceStatus(on)
	s.log.InfoContext(ctx, "maintenance toggled",
		slog.Bool("maintenance", on),
		slog.String("admin_id", upd.Author.ID.String()),
	)

	if err := s.reply(ctx, upd, domain.Text(fmt.Sprintf(msgMaintenance, status))); err != nil {
		return err
	}
	s.notifyAdmins(ctx, fmt.Sprintf(notifyMaintenance, status, upd.Author.ID))
	return nil
}

// FlushSessions handles "/flush_queue": every conversation session is
// dropped and users must send /start again.
func (s *Service) FlushSessions(ctx context.Context, upd domain.Update) error {
	if ok, err := s.authorize(ctx, upd); !ok {
		return err
	}

	n := s.sessions.Flush()
	s.metrics.SetSessions(0)
	s.log.InfoContext(ctx, "sessions flushed",
		slog.Int("count", n),
		slog.String("admin_id", upd.Author.ID.String()),
	)

	if err := s.reply(ctx, upd, domain.Text(fmt.Sprintf(msgFlushed, n))); err != nil {
		return err
	}
	s.notifyAdmins(ctx, fmt.Sprintf(notifyFlushed, upd.Author.ID))
	return nil
}

// UnbanCallback handles a press on a ban list button. On removal the list
// message is edited to carry the unban notice and loses its buttons.
func (s *Service) UnbanCallback(ctx context.Context, upd domain.Update) error {
	if !s.admins.IsAdmin(upd.Author.ID) {
		s.log.WarnContext(ctx, "unban callback denied",
			slog.String("user_id", upd.Author.ID.String()),
		)
		return s.answer(ctx, upd, msgDeniedCallback)
	}

	target, err := targetID(strings.TrimPrefix(upd.CallbackData, UnbanCallbackPrefix))
	if err != nil {
		s.log.WarnContext(ctx, "malformed unban callback",
			slog.String("data", upd.CallbackData),
		)
		return s.answer(ctx, upd, msgCallbackInvalid)
	}

	if !s.state.Unban(target) {
		return s.answer(ctx, upd, msgCallbackNoop)
	}

	s.log.InfoContext(ctx, "user unbanned",
		slog.String("target_id", target.String()),
		slog.String("admin_id", upd.Author.ID.String()),
		slog.String("via", "callback"),
	)

	edited := fmt.Sprintf(msgUnbanned, target) + "\n" + upd.MessageText
	if err := s.msgr.EditMessage(ctx, upd.ChatID, upd.MessageID, domain.Text(edited)); err != nil {
		s.log.WarnContext(ctx, "edit ban list failed",
			slog.String("error", err.Error()),
		)
	}
	if err := s.answer(ctx, upd, fmt.Sprintf(msgCallbackUnban, target)); err != nil {
		return err
	}
	s.notifyAdmins(ctx, fmt.Sprintf(notifyUnbannedFromList, target, upd.Author.ID))
	return nil
}

func (s *Service) answer(ctx context.Context, upd domain.Update, text string) error {
	if err := s.msgr.AnswerCallback(ctx, upd.CallbackID, text); err != nil {
		return fmt.Errorf("admin: answer callback %s: %w", upd.CallbackID, err)
	}
	return nil
}

// targetID parses the first argument of a command as a user id.
func targetID(args string) (domain.UserID, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, domain.NewValidationError("user_id", "required")
	}
	return domain.ParseUserID(fields[0])
}
