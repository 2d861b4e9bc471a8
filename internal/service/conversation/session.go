package conversation

import (
	"slices"
	"sync"

	"github.com/looplab/fsm"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// FSM event names. Every edge of the dialog is declared once in dialogEvents.
const (
	evAuthenticate    = "authenticate"
	evNewFeedback     = "new_feedback"
	evEditFeedback    = "edit_feedback"
	evFinish          = "finish"
	evCompanyEntered  = "company_entered"
	evFeedbackEntered = "feedback_entered"
	evBack            = "back"
	evSelectEntry     = "select_entry"
	evTextEdited      = "text_edited"
	evConfirm         = "confirm"
	evCancel          = "cancel"
)

func st(s domain.ConversationState) []string { return []string{s.String()} }

var dialogEvents = fsm.Events{
	{Name: evAuthenticate, Src: st(domain.StateAuthentication), Dst: domain.StateMainMenu.String()},
	{Name: evNewFeedback, Src: st(domain.StateMainMenu), Dst: domain.StateCompanyInput.String()},
	{Name: evEditFeedback, Src: st(domain.StateMainMenu), Dst: domain.StateEditSelect.String()},
	{Name: evFinish, Src: st(domain.StateMainMenu), Dst: domain.StateConfirmation.String()},
	{Name: evCompanyEntered, Src: st(domain.StateCompanyInput), Dst: domain.StateFeedbackInput.String()},
	{Name: evFeedbackEntered, Src: st(domain.StateFeedbackInput), Dst: domain.StateMainMenu.String()},
	{Name: evBack, Src: st(domain.StateEditSelect), Dst: domain.StateMainMenu.String()},
	{Name: evSelectEntry, Src: st(domain.StateEditSelect), Dst: domain.StateEditFeedbackText.String()},
	{Name: evTextEdited, Src: st(domain.StateEditFeedbackText), Dst: domain.StateMainMenu.String()},
	{Name: evConfirm, Src: st(domain.StateConfirmation), Dst: domain.StateMainMenu.String()},
	{Name: evCancel, Src: st(domain.StateConfirmation), Dst: domain.StateMainMenu.String()},
}

// Session is one user's dialog position and draft entries.
//
// The unexported fields are only touched by Machine while holding mu.
type Session struct {
	mu sync.Mutex

	userID         domain.UserID
	declaredName   *string
	companyContext *string
	entries        []domain.FeedbackEntry
	editCursor     *int
	dialog         *fsm.FSM
}

func newSession(userID domain.UserID) *Session {
	return &Session{
		userID: userID,
		dialog: fsm.NewFSM(domain.StateAuthentication.String(), dialogEvents, fsm.Callbacks{}),
	}
}

func (s *Session) state() domain.ConversationState {
	return domain.ConversationState(s.dialog.Current())
}

// Snapshot is a read-only copy of a Session.
type Snapshot struct {
	UserID         domain.UserID
	DeclaredName   *string
	CompanyContext *string
	Entries        []domain.FeedbackEntry
	EditCursor     *int
	State          domain.ConversationState
}

// Snapshot copies the session under its lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		UserID:         s.userID,
		DeclaredName:   clonePtr(s.declaredName),
		CompanyContext: clonePtr(s.companyContext),
		Entries:        slices.Clone(s.entries),
		EditCursor:     clonePtr(s.editCursor),
		State:          s.state(),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
