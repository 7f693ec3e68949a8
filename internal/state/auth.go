// Package state holds the session-lifetime client state containers. Each
// container owns one snapshot struct and mutates it only by applying pure
// reducer functions, so every invariant lives in exactly one place.
// Derived values (unread counts, subscription lookups) are computed on
// read instead of being kept in sync by writers.
package state

import (
	"sync"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/internal/session"
)

// AuthState is the authentication slice of client state.
// IsAuthenticated is derived from User and never set independently.
type AuthState struct {
	User            *entity.User
	IsAuthenticated bool
	PendingRole     entity.Role
}

// ReduceSetUser replaces the user and derives the authenticated flag.
func ReduceSetUser(s AuthState, u *entity.User) AuthState {
	s.User = u
	s.IsAuthenticated = u != nil
	return s
}

// ReduceSetPendingRole records the role chosen before the OAuth handoff.
func ReduceSetPendingRole(s AuthState, role entity.Role) AuthState {
	s.PendingRole = role
	return s
}

// ReduceLogout clears user, authenticated flag and pending role together.
func ReduceLogout(AuthState) AuthState {
	return AuthState{}
}

// Auth owns the auth state. It is the only container persisted across
// runs, by writing through to the session store.
type Auth struct {
	mu      sync.Mutex
	state   AuthState
	persist *session.Store
}

// NewAuth creates the auth container, restoring any persisted snapshot.
// persist may be nil, in which case nothing survives the process.
func NewAuth(persist *session.Store) *Auth {
	a := &Auth{persist: persist}
	if persist != nil {
		a.state = ReduceSetUser(a.state, persist.User())
		a.state = ReduceSetPendingRole(a.state, persist.PendingRole())
	}
	return a
}

// State returns a snapshot of the auth state.
func (a *Auth) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// User returns the current user, or nil when logged out.
func (a *Auth) User() *entity.User {
	return a.State().User
}

// SetUser stores the current user.
func (a *Auth) SetUser(u *entity.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = ReduceSetUser(a.state, u)
	if a.persist != nil {
		_ = a.persist.SetUser(u)
	}
}

// SetPendingRole stores the pre-auth role selection.
func (a *Auth) SetPendingRole(role entity.Role) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = ReduceSetPendingRole(a.state, role)
	if a.persist != nil {
		_ = a.persist.SetPendingRole(role)
	}
}

// Logout clears the auth state and the persisted snapshot.
func (a *Auth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = ReduceLogout(a.state)
	if a.persist != nil {
		_ = a.persist.Clear()
	}
}
