// Package session persists the auth slice of client state between runs,
// filling the role browser local storage plays for the hosted application.
// Only auth survives a restart; every other store is session-lifetime.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// Snapshot is the persisted auth state.
type Snapshot struct {
	Token       string       `json:"token,omitempty"`
	User        *entity.User `json:"user,omitempty"`
	PendingRole entity.Role  `json:"pendingRole,omitempty"`
}

// Store reads and writes the snapshot file. Safe for concurrent use.
type Store struct {
	path string

	mu   sync.Mutex
	snap Snapshot
}

// Open loads the snapshot at path, starting empty when the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.snap); err != nil {
		// A corrupt session file is treated as logged out.
		s.snap = Snapshot{}
	}
	return s, nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Token
}

// SetToken stores the bearer token and persists the snapshot.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Token = token
	return s.save()
}

// User returns the persisted user, or nil.
func (s *Store) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.User
}

// SetUser persists the user snapshot.
func (s *Store) SetUser(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.User = u
	return s.save()
}

// PendingRole returns the role selected before the OAuth handoff.
func (s *Store) PendingRole() entity.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.PendingRole
}

// SetPendingRole persists the pre-auth role selection.
func (s *Store) SetPendingRole(role entity.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.PendingRole = role
	return s.save()
}

// Clear wipes token, user and pending role together.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{}
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
