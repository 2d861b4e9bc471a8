package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

func (m *Machine) finishCollection(ctx context.Context, s *Session, _ domain.Message) error {
	if err := m.fire(ctx, s, evFinish); err != nil {
		return err
	}
	return m.reply(ctx, s, domain.WithActions(
		fmt.Sprintf(msgConfirmFinish, len(s.entries)), "",
		domain.ActionYes, domain.ActionNo,
	))
}

// confirm submits the whole batch. Entries are cleared only after the sink
// accepted them; on failure they stay in memory untouched.
func (m *Machine) confirm(ctx context.Context, s *Session, _ domain.Message) error {
	if err := m.fire(ctx, s, evConfirm); err != nil {
		return err
	}

	if len(s.entries) == 0 {
		return m.reply(ctx, s, mainMenu(msgNothingToSave))
	}

	batch := slices.Clone(s.entries)
	err := m.sink.Submit(ctx, batch)
	m.metrics.BatchSubmitted(len(batch), err)

	if err != nil {
		m.log.ErrorContext(ctx, "batch submission failed",
			slog.String("user_id", s.userID.String()),
			slog.Int("count", len(batch)),
			slog.String("error", err.Error()),
		)
		return m.reply(ctx, s, mainMenu(msgBatchFailed))
	}

	s.entries = []domain.FeedbackEntry{}

	m.log.InfoContext(ctx, "batch submitted",
		slog.String("user_id", s.userID.String()),
		slog.Int("count", len(batch)),
	)
	return m.reply(ctx, s, mainMenu(fmt.Sprintf(msgBatchSaved, len(batch))))
}

func (m *Machine) cancel(ctx context.Context, s *Session, _ domain.Message) error {
	if err := m.fire(ctx, s, evCancel); err != nil {
		return err
	}
	return m.reply(ctx, s, mainMenu(fmt.Sprintf(msgContinue, len(s.entries))))
}
