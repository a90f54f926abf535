package memory

import (
	"sync"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// The token does not survive the process.
type SessionStore struct {
	mu    sync.RWMutex
	token string
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// NewSessionStoreWithToken creates a store that already holds token.
func NewSessionStoreWithToken(token string) *SessionStore {
	return &SessionStore{token: token}
}

// LoadToken returns the stored token or domain.ErrNotFound.
func (s *SessionStore) LoadToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", domain.ErrNotFound
	}
	return s.token, nil
}

// SaveToken replaces the stored token.
func (s *SessionStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// DeleteToken removes the stored token.
func (s *SessionStore) DeleteToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// Close is a no-op.
func (s *SessionStore) Close() error {
	return nil
}
