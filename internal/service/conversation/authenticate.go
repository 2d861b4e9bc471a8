package conversation

import (
	"context"
	"strings"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

var errNameTooShort = domain.NewValidationError("name", "at least two words required")

// parseFullName accepts any text with at least two whitespace-separated words.
func parseFullName(text string) (string, error) {
	if len(strings.Fields(text)) < 2 {
		return "", errNameTooShort
	}
	return strings.TrimSpace(text), nil
}

func (m *Machine) authenticate(ctx context.Context, s *Session, msg domain.Message) error {
	name, err := parseFullName(msg.Text)
	if err != nil {
		return m.reply(ctx, s, domain.Text(msgNameInvalid))
	}

	s.declaredName = &name
	s.entries = []domain.FeedbackEntry{}
	s.editCursor = nil

	if err := m.fire(ctx, s, evAuthenticate); err != nil {
		return err
	}
	return m.reply(ctx, s, mainMenu(msgMainMenu))
}
