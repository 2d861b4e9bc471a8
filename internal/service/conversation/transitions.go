package conversation

import (
	"context"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

type stepFunc func(m *Machine, ctx context.Context, s *Session, msg domain.Message) error

type transitionKey struct {
	state  domain.ConversationState
	action domain.Action
}

// transitions is the whole dialog. An entry keyed by ActionText accepts any
// input the state has no more specific entry for; a state with no
// ActionText entry ignores unrecognized input.
var transitions = map[transitionKey]stepFunc{
	{domain.StateAuthentication, domain.ActionText}: (*Machine).authenticate,

	{domain.StateMainMenu, domain.ActionNewFeedback}:      (*Machine).newFeedback,
	{domain.StateMainMenu, domain.ActionEditFeedback}:     (*Machine).editFeedback,
	{domain.StateMainMenu, domain.ActionFinishCollection}: (*Machine).finishCollection,

	{domain.StateCompanyInput, domain.ActionText}:  (*Machine).companyEntered,
	{domain.StateFeedbackInput, domain.ActionText}: (*Machine).feedbackEntered,

	{domain.StateEditSelect, domain.ActionBack}: (*Machine).editBack,
	{domain.StateEditSelect, domain.ActionText}: (*Machine).selectEntry,

	{domain.StateEditFeedbackText, domain.ActionText}: (*Machine).textEdited,

	{domain.StateConfirmation, domain.ActionYes}: (*Machine).confirm,
	{domain.StateConfirmation, domain.ActionNo}:  (*Machine).cancel,
}

func lookup(state domain.ConversationState, action domain.Action) (stepFunc, bool) {
	if step, ok := transitions[transitionKey{state, action}]; ok {
		return step, true
	}
	step, ok := transitions[transitionKey{state, domain.ActionText}]
	return step, ok
}
