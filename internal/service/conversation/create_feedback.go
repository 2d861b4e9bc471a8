package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

func (m *Machine) newFeedback(ctx context.Context, s *Session, _ domain.Message) error {
	if err := m.fire(ctx, s, evNewFeedback); err != nil {
		return err
	}
	return m.reply(ctx, s, domain.WithRemovedKeyboard(msgCompanyPrompt))
}

// companyEntered stores the company text verbatim; empty text is accepted.
func (m *Machine) companyEntered(ctx context.Context, s *Session, msg domain.Message) error {
	company := msg.Text
	s.companyContext = &company

	if err := m.fire(ctx, s, evCompanyEntered); err != nil {
		return err
	}
	return m.reply(ctx, s, domain.Text(msgFeedbackAsk))
}

func (m *Machine) feedbackEntered(ctx context.Context, s *Session, msg domain.Message) error {
	entry := domain.NewFeedbackEntry(
		deref(s.declaredName),
		deref(s.companyContext),
		msg.Text,
		msg.Author,
		m.now(),
	)
	s.entries = append(s.entries, entry)
	m.metrics.FeedbackSaved()

	m.log.InfoContext(ctx, "feedback saved",
		slog.String("user_id", s.userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Int("count", len(s.entries)),
	)

	if err := m.fire(ctx, s, evFeedbackEntered); err != nil {
		return err
	}
	return m.reply(ctx, s, mainMenu(fmt.Sprintf(msgFeedbackSaved, len(s.entries))))
}
