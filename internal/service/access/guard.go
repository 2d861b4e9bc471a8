// Package access decides whether an inbound message may reach the
// conversation handlers.
package access

import (
	"slices"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Decision is the outcome of Guard.Admit.
type Decision struct {
	Allowed bool
	Reason  domain.DenyReason
}

var allow = Decision{Allowed: true}

func deny(reason domain.DenyReason) Decision {
	return Decision{Reason: reason}
}

// Guard answers ban, maintenance and admin questions against a State and
// a static admin set. It never mutates the State.
type Guard struct {
	state  *State
	admins []domain.UserID
}

// NewGuard creates a Guard. admins is copied.
func NewGuard(state *State, admins []domain.UserID) *Guard {
	return &Guard{
		state:  state,
		admins: slices.Clone(admins),
	}
}

// Admit decides whether a message with the given text from userID may be
// dispatched. The start command is always admitted. Ban is checked before
// maintenance, so a banned admin is still denied.
func (g *Guard) Admit(userID domain.UserID, text string) Decision {
	if domain.IsStartCommand(text) {
		return allow
	}
	if g.state.IsBanned(userID) {
		return deny(domain.DenyBanned)
	}
	if g.state.Maintenance() && !g.IsAdmin(userID) {
		return deny(domain.DenyMaintenance)
	}
	return allow
}

// IsAdmin reports whether userID is in the static admin set.
func (g *Guard) IsAdmin(userID domain.UserID) bool {
	return slices.Contains(g.admins, userID)
}

// Admins returns the admin set in configuration order.
func (g *Guard) Admins() []domain.UserID {
	return slices.Clone(g.admins)
}
