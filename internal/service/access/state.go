package access

import (
	"slices"
	"sync"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// State is the process-wide ban set and maintenance flag. It lives for the
// process lifetime and is never persisted.
type State struct {
	mu          sync.RWMutex
	banned      map[domain.UserID]struct{}
	maintenance bool
}

// NewState returns an empty State: nobody banned, maintenance off.
func NewState() *State {
	return &State{banned: make(map[domain.UserID]struct{})}
}

// Ban adds id to the ban set. It reports whether id was newly added.
func (s *State) Ban(id domain.UserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banned[id]; ok {
		return false
	}
	s.banned[id] = struct{}{}
	return true
}

// Unban removes id from the ban set. It reports whether id was present.
func (s *State) Unban(id domain.UserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banned[id]; !ok {
		return false
	}
	delete(s.banned, id)
	return true
}

// IsBanned reports whether id is in the ban set.
func (s *State) IsBanned(id domain.UserID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.banned[id]
	return ok
}

// Banned returns the ban set in ascending order.
func (s *State) Banned() []domain.UserID {
	s.mu.RLock()
	ids := make([]domain.UserID, 0, len(s.banned))
	for id := range s.banned {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// ToggleMaintenance flips the maintenance flag and returns the new value.
func (s *State) ToggleMaintenance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maintenance = !s.maintenance
	return s.maintenance
}

// Maintenance reports whether maintenance mode is active.
func (s *State) Maintenance() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maintenance
}
