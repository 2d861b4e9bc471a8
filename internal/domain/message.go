package domain

import "strings"

// Update is a platform-neutral inbound chat event.
type Update struct {
	ID     int
	Kind   UpdateKind
	Author Author
	ChatID int64
	Text   string

	// Command and Args are set for UpdateKindCommand ("/ban 42" → "ban", "42").
	Command string
	Args    string

	// Callback fields are set for UpdateKindCallback.
	CallbackID   string
	CallbackData string
	MessageID    int
	MessageText  string
}

// IsStartCommand reports whether text is the /start command, optionally
// addressed to a bot ("/start@feedback_bot") and followed by a payload.
func IsStartCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return cmd == "/start"
}

// Message is the input handed to the conversation state machine.
type Message struct {
	Author Author
	Text   string
	Action Action
}

// NewMessage resolves the action label of text.
func NewMessage(author Author, text string) Message {
	return Message{Author: author, Text: text, Action: ParseAction(text)}
}

// Button is a keyboard button. Data is only used by inline keyboards.
type Button struct {
	Label string
	Data  string
}

// Keyboard describes the keyboard attached to an outbound message.
type Keyboard struct {
	Kind        KeyboardKind
	Buttons     []Button
	Placeholder string
}

// OutMessage is an outbound chat message.
type OutMessage struct {
	Text     string
	Keyboard Keyboard
}

// Text returns a message that leaves the keyboard as is.
func Text(text string) OutMessage {
	return OutMessage{Text: text}
}

// WithRemovedKeyboard returns a message that hides the reply keyboard.
func WithRemovedKeyboard(text string) OutMessage {
	return OutMessage{Text: text, Keyboard: Keyboard{Kind: KeyboardRemove}}
}

// WithActions returns a message with a reply keyboard, one action per row.
func WithActions(text, placeholder string, actions ...Action) OutMessage {
	buttons := make([]Button, len(actions))
	for i, a := range actions {
		buttons[i] = Button{Label: a.Label()}
	}
	return OutMessage{
		Text:     text,
		Keyboard: Keyboard{Kind: KeyboardReply, Buttons: buttons, Placeholder: placeholder},
	}
}

// WithInlineButtons returns a message with inline callback buttons.
func WithInlineButtons(text string, buttons ...Button) OutMessage {
	return OutMessage{Text: text, Keyboard: Keyboard{Kind: KeyboardInline, Buttons: buttons}}
}
