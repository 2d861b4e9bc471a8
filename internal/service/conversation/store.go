package conversation

import (
	"sync"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Store maps users to their sessions for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[domain.UserID]*Session
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[domain.UserID]*Session)}
}

// Get returns the session of id, if any.
func (st *Store) Get(id domain.UserID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	return s, ok
}

// Reset replaces the session of id with a fresh one in the Authentication
// state, discarding any draft entries.
func (st *Store) Reset(id domain.UserID) *Session {
	s := newSession(id)

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()

	return s
}

// Flush drops every session and returns how many were dropped.
func (st *Store) Flush() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	n := len(st.sessions)
	st.sessions = make(map[domain.UserID]*Session)
	return n
}

// Len returns the number of sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}
