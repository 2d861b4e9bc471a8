package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

var (
	errSelectionNotNumber  = domain.NewValidationError("selection", "must be a number")
	errSelectionOutOfRange = domain.NewValidationError("selection", "out of range")
)

// parseSelection turns a 1-based entry number into an index into n entries.
func parseSelection(text string, n int) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errSelectionNotNumber
	}
	if num < 1 || num > n {
		return 0, errSelectionOutOfRange
	}
	return num - 1, nil
}

func (m *Machine) editFeedback(ctx context.Context, s *Session, _ domain.Message) error {
	if len(s.entries) == 0 {
		return m.reply(ctx, s, domain.Text(msgNothingToEdit))
	}

	if err := m.fire(ctx, s, evEditFeedback); err != nil {
		return err
	}
	return m.reply(ctx, s, domain.WithActions(editList(s.entries), "", domain.ActionBack))
}

func (m *Machine) editBack(ctx context.Context, s *Session, _ domain.Message) error {
	if err := m.fire(ctx, s, evBack); err != nil {
		return err
	}
	return m.reply(ctx, s, mainMenu(msgBackToMenu))
}

func (m *Machine) selectEntry(ctx context.Context, s *Session, msg domain.Message) error {
	idx, err := parseSelection(msg.Text, len(s.entries))
	switch {
	case errors.Is(err, errSelectionNotNumber):
		return m.reply(ctx, s, domain.Text(msgNotANumber))
	case err != nil:
		return m.reply(ctx, s, domain.Text(msgBadNumber))
	}

	s.editCursor = &idx

	if err := m.fire(ctx, s, evSelectEntry); err != nil {
		return err
	}
	return m.reply(ctx, s, domain.WithRemovedKeyboard(fmt.Sprintf(msgCurrentText, s.entries[idx].FeedbackText)))
}

func (m *Machine) textEdited(ctx context.Context, s *Session, msg domain.Message) error {
	cursor := s.editCursor
	s.editCursor = nil

	if err := m.fire(ctx, s, evTextEdited); err != nil {
		return err
	}

	if cursor == nil || *cursor < 0 || *cursor >= len(s.entries) {
		m.log.WarnContext(ctx, "edit cursor invalid",
			slog.String("user_id", s.userID.String()),
			slog.Int("entries", len(s.entries)),
		)
		return m.reply(ctx, s, mainMenu(msgEditLost))
	}

	e := &s.entries[*cursor]
	e.FeedbackText = msg.Text
	e.CreatedAt = m.now()

	return m.reply(ctx, s, mainMenu(msgEditSaved))
}
