package file

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionFileName is the file holding the session token.
const SessionFileName = "session.toml"

type sessionDocument struct {
	Session struct {
		Token string `toml:"token"`
	} `toml:"session"`
}

// SessionStore keeps the session token in a TOML file readable only by the owner.
type SessionStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSessionStore creates a file session store in configDir.
// If configDir is empty, defaults to ~/.aidoc/session.toml.
func NewSessionStore(configDir string) (*SessionStore, error) {
	configDir, err := resolveDir(configDir)
	if err != nil {
		return nil, err
	}
	return &SessionStore{filePath: filepath.Join(configDir, SessionFileName)}, nil
}

// LoadToken returns the stored token or domain.ErrNotFound.
func (s *SessionStore) LoadToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNotFound
		}
		return "", err
	}

	var doc sessionDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	if doc.Session.Token == "" {
		return "", domain.ErrNotFound
	}
	return doc.Session.Token, nil
}

// SaveToken replaces the stored token.
func (s *SessionStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc sessionDocument
	doc.Session.Token = token
	data, err := toml.Marshal(doc)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.filePath, data, 0600)
}

// DeleteToken removes the session file.
func (s *SessionStore) DeleteToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Close is a no-op; the file is not held open.
func (s *SessionStore) Close() error {
	return nil
}

// Path returns the session file path.
func (s *SessionStore) Path() string {
	return s.filePath
}
