// Package conversation implements the per-user feedback dialog: the session
// store and the state machine that validates input and moves users between
// dialog states.
package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// sender delivers outbound chat messages.
type sender interface {
	Send(ctx context.Context, chatID int64, msg domain.OutMessage) error
}

// batchSink receives a confirmed batch. Submit is atomic: on error nothing
// was written.
type batchSink interface {
	Submit(ctx context.Context, entries []domain.FeedbackEntry) error
}

// recorder receives dialog metrics.
type recorder interface {
	FeedbackSaved()
	BatchSubmitted(n int, err error)
	SetSessions(n int)
}

// Machine drives every user's dialog.
type Machine struct {
	log     *slog.Logger
	store   *Store
	sink    batchSink
	sender  sender
	metrics recorder
	now     func() time.Time
}

// NewMachine creates a Machine over store.
func NewMachine(
	log *slog.Logger,
	store *Store,
	sink batchSink,
	sender sender,
	metrics recorder,
) *Machine {
	return &Machine{
		log:     log.With("service", "conversation"),
		store:   store,
		sink:    sink,
		sender:  sender,
		metrics: metrics,
		now:     time.Now,
	}
}

// Start handles /start: the user's session is replaced by a fresh one in
// the Authentication state and all draft entries are discarded.
func (m *Machine) Start(ctx context.Context, author domain.Author) error {
	s := m.store.Reset(author.ID)
	m.metrics.SetSessions(m.store.Len())

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := m.reply(ctx, s, domain.Text(msgWelcome)); err != nil {
		return err
	}
	return m.reply(ctx, s, domain.WithRemovedKeyboard(msgNamePrompt))
}

// Handle dispatches one message through the transition table. Input that
// the current state does not accept is ignored.
func (m *Machine) Handle(ctx context.Context, msg domain.Message) error {
	s, ok := m.store.Get(msg.Author.ID)
	if !ok {
		m.log.DebugContext(ctx, "message without session",
			slog.String("user_id", msg.Author.ID.String()),
		)
		return m.send(ctx, msg.Author.ID, domain.Text(msgNoSession))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state()
	step, ok := lookup(state, msg.Action)
	if !ok {
		m.log.DebugContext(ctx, "input ignored",
			slog.String("user_id", msg.Author.ID.String()),
			slog.String("state", state.String()),
			slog.String("action", msg.Action.String()),
		)
		return nil
	}

	return step(m, ctx, s, msg)
}

// Session returns a snapshot of the user's session.
func (m *Machine) Session(id domain.UserID) (Snapshot, error) {
	s, ok := m.store.Get(id)
	if !ok {
		return Snapshot{}, fmt.Errorf("conversation.Session %s: %w", id, domain.ErrNoSession)
	}
	return s.Snapshot(), nil
}

// fire moves the session along event. The transition table only fires
// events valid for the current state, so an error here is a programming bug.
func (m *Machine) fire(ctx context.Context, s *Session, event string) error {
	from := s.state()
	if err := s.dialog.Event(ctx, event); err != nil {
		return fmt.Errorf("conversation: event %s from %s: %w", event, from, err)
	}
	m.log.DebugContext(ctx, "state changed",
		slog.String("user_id", s.userID.String()),
		slog.String("from", from.String()),
		slog.String("to", s.state().String()),
	)
	return nil
}

func (m *Machine) reply(ctx context.Context, s *Session, msg domain.OutMessage) error {
	return m.send(ctx, s.userID, msg)
}

func (m *Machine) send(ctx context.Context, to domain.UserID, msg domain.OutMessage) error {
	if err := m.sender.Send(ctx, int64(to), msg); err != nil {
		return fmt.Errorf("conversation: send to %s: %w", to, err)
	}
	return nil
}
