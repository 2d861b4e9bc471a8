package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// toUpdate converts a Bot API update. Updates without a sender, messages
// without text and update types the bot does not handle are skipped.
func toUpdate(u tgbotapi.Update) (domain.Update, bool) {
	switch {
	case u.Message != nil:
		return fromMessage(u.UpdateID, u.Message)
	case u.CallbackQuery != nil:
		return fromCallback(u.UpdateID, u.CallbackQuery)
	default:
		return domain.Update{}, false
	}
}

func fromMessage(id int, m *tgbotapi.Message) (domain.Update, bool) {
	if m.From == nil || m.Chat == nil || m.Text == "" {
		return domain.Update{}, false
	}

	upd := domain.Update{
		ID:     id,
		Kind:   domain.UpdateKindMessage,
		Author: author(m.From),
		ChatID: m.Chat.ID,
		Text:   m.Text,
	}
	if m.IsCommand() {
		upd.Kind = domain.UpdateKindCommand
		upd.Command = m.Command()
		upd.Args = strings.TrimSpace(m.CommandArguments())
	}
	return upd, true
}

func fromCallback(id int, q *tgbotapi.CallbackQuery) (domain.Update, bool) {
	if q.From == nil {
		return domain.Update{}, false
	}

	upd := domain.Update{
		ID:           id,
		Kind:         domain.UpdateKindCallback,
		Author:       author(q.From),
		ChatID:       q.From.ID,
		CallbackID:   q.ID,
		CallbackData: q.Data,
	}
	if q.Message != nil {
		if q.Message.Chat != nil {
			upd.ChatID = q.Message.Chat.ID
		}
		upd.MessageID = q.Message.MessageID
		upd.MessageText = q.Message.Text
	}
	return upd, true
}

// author uses the full name, falling back to the username.
func author(u *tgbotapi.User) domain.Author {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return domain.Author{ID: domain.UserID(u.ID), DisplayName: name}
}
