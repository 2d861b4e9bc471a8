// Package telegram adapts the Telegram Bot API to the bot's
// platform-neutral update and message types.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// botAPI is the subset of *tgbotapi.BotAPI the bot uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Client sends outbound messages through the Bot API.
type Client struct {
	api botAPI
	log *slog.Logger
}

// NewClient wraps api.
func NewClient(api botAPI, log *slog.Logger) *Client {
	return &Client{api: api, log: log.With("component", "telegram")}
}

// Send delivers msg to chatID.
func (c *Client) Send(ctx context.Context, chatID int64, msg domain.OutMessage) error {
	out := tgbotapi.NewMessage(chatID, msg.Text)
	if markup := replyMarkup(msg.Keyboard); markup != nil {
		out.ReplyMarkup = markup
	}

	if _, err := c.api.Send(out); err != nil {
		return fmt.Errorf("telegram.Send chat %d: %w", chatID, err)
	}
	c.log.DebugContext(ctx, "message sent", slog.Int64("chat_id", chatID))
	return nil
}

// EditMessage replaces the text of a sent message. Unless msg carries an
// inline keyboard the message loses its buttons.
func (c *Client) EditMessage(ctx context.Context, chatID int64, messageID int, msg domain.OutMessage) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, msg.Text)
	if msg.Keyboard.Kind == domain.KeyboardInline {
		markup := inlineMarkup(msg.Keyboard.Buttons)
		edit.ReplyMarkup = &markup
	}

	if _, err := c.api.Request(edit); err != nil {
		return fmt.Errorf("telegram.EditMessage chat %d message %d: %w", chatID, messageID, err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query with a short notice.
func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if _, err := c.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("telegram.AnswerCallback %s: %w", callbackID, err)
	}
	return nil
}

// replyMarkup converts kb into a Bot API markup. KeyboardKeep yields nil.
func replyMarkup(kb domain.Keyboard) any {
	switch kb.Kind {
	case domain.KeyboardRemove:
		return tgbotapi.NewRemoveKeyboard(false)
	case domain.KeyboardReply:
		rows := make([][]tgbotapi.KeyboardButton, len(kb.Buttons))
		for i, b := range kb.Buttons {
			rows[i] = tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(b.Label))
		}
		markup := tgbotapi.NewReplyKeyboard(rows...)
		markup.InputFieldPlaceholder = kb.Placeholder
		return markup
	case domain.KeyboardInline:
		return inlineMarkup(kb.Buttons)
	default:
		return nil
	}
}

// inlineMarkup lays out one callback button per row.
func inlineMarkup(buttons []domain.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, len(buttons))
	for i, b := range buttons {
		rows[i] = tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
