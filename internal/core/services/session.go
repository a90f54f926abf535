package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Ensure SessionService implements the interfaces.
var (
	_ driving.SessionService = (*SessionService)(nil)
	_ driven.TokenProvider   = (*SessionService)(nil)
)

// SessionService keeps the session token in memory, backed by a durable store.
// The store is read once, when the service is created.
type SessionService struct {
	mu    sync.RWMutex
	store driven.SessionStore
	token string
}

// NewSessionService creates a session service and loads any stored token.
func NewSessionService(store driven.SessionStore) *SessionService {
	s := &SessionService{store: store}
	if store == nil {
		return s
	}
	token, err := store.LoadToken()
	switch {
	case err == nil:
		s.token = token
		logger.Debug("Session restored from store")
	case errors.Is(err, domain.ErrNotFound):
		logger.Debug("No stored session")
	default:
		logger.Error("load session: %v", err)
	}
	return s
}

// Current returns the token and true when a session exists.
func (s *SessionService) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// IsAuthenticated reports whether a session exists.
func (s *SessionService) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Set persists token and makes it visible to subsequent requests.
func (s *SessionService) Set(token string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if strings.TrimSpace(token) == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveToken(token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the session. The in-memory token is dropped even when the
// store fails, so the running process is logged out either way.
func (s *SessionService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if s.store == nil {
		return nil
	}
	if err := s.store.DeleteToken(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
