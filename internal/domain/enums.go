package domain

// ConversationState is the position of a user in the feedback dialog.
type ConversationState string

const (
	StateAuthentication   ConversationState = "AUTHENTICATION"
	StateMainMenu         ConversationState = "MAIN_MENU"
	StateCompanyInput     ConversationState = "COMPANY_INPUT"
	StateFeedbackInput    ConversationState = "FEEDBACK_INPUT"
	StateConfirmation     ConversationState = "CONFIRMATION"
	StateEditSelect       ConversationState = "EDIT_SELECT"
	StateEditFeedbackText ConversationState = "EDIT_FEEDBACK_TEXT"
)

func (s ConversationState) String() string { return string(s) }

func (s ConversationState) IsValid() bool {
	switch s {
	case StateAuthentication, StateMainMenu, StateCompanyInput, StateFeedbackInput,
		StateConfirmation, StateEditSelect, StateEditFeedbackText:
		return true
	}
	return false
}

// AllConversationStates lists every state in dialog order.
func AllConversationStates() []ConversationState {
	return []ConversationState{
		StateAuthentication, StateMainMenu, StateCompanyInput, StateFeedbackInput,
		StateConfirmation, StateEditSelect, StateEditFeedbackText,
	}
}

// Action is a recognized keyboard label, resolved once when a message
// enters the bot. Free text that matches no label is ActionText.
type Action string

const (
	ActionText             Action = "TEXT"
	ActionNewFeedback      Action = "NEW_FEEDBACK"
	ActionEditFeedback     Action = "EDIT_FEEDBACK"
	ActionFinishCollection Action = "FINISH_COLLECTION"
	ActionYes              Action = "YES"
	ActionNo               Action = "NO"
	ActionBack             Action = "BACK"
)

var actionLabels = map[Action]string{
	ActionNewFeedback:      "New Feedback",
	ActionEditFeedback:     "Edit Feedback",
	ActionFinishCollection: "Finish collection",
	ActionYes:              "Yes",
	ActionNo:               "No",
	ActionBack:             "Back",
}

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	if a == ActionText {
		return true
	}
	_, ok := actionLabels[a]
	return ok
}

// Label returns the keyboard button text for the action.
// ActionText has no label.
func (a Action) Label() string {
	return actionLabels[a]
}

// ParseAction resolves a message text to an Action by exact label match.
func ParseAction(text string) Action {
	for a, label := range actionLabels {
		if text == label {
			return a
		}
	}
	return ActionText
}

// DenyReason explains why the access guard rejected a message.
type DenyReason string

const (
	DenyNone        DenyReason = ""
	DenyBanned      DenyReason = "BANNED"
	DenyMaintenance DenyReason = "MAINTENANCE"
)

func (r DenyReason) String() string { return string(r) }

// UpdateKind distinguishes inbound chat events.
type UpdateKind string

const (
	UpdateKindMessage  UpdateKind = "MESSAGE"
	UpdateKindCommand  UpdateKind = "COMMAND"
	UpdateKindCallback UpdateKind = "CALLBACK"
)

func (k UpdateKind) String() string { return string(k) }

func (k UpdateKind) IsValid() bool {
	switch k {
	case UpdateKindMessage, UpdateKindCommand, UpdateKindCallback:
		return true
	}
	return false
}

// KeyboardKind selects how an outbound message changes the user's keyboard.
type KeyboardKind string

const (
	// KeyboardKeep leaves the current reply keyboard untouched.
	KeyboardKeep   KeyboardKind = ""
	KeyboardReply  KeyboardKind = "REPLY"
	KeyboardRemove KeyboardKind = "REMOVE"
	KeyboardInline KeyboardKind = "INLINE"
)

func (k KeyboardKind) String() string { return string(k) }
