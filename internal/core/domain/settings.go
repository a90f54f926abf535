package domain

import (
	"fmt"
	"net/url"
	"time"
)

// SessionBackend selects where the session token is persisted.
type SessionBackend string

// Available session backends.
const (
	// SessionBackendFile stores the token in a TOML file next to the config.
	SessionBackendFile SessionBackend = "file"

	// SessionBackendSQLite stores the token in a SQLite database.
	SessionBackendSQLite SessionBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b SessionBackend) IsValid() bool {
	switch b {
	case SessionBackendFile, SessionBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b SessionBackend) String() string {
	return string(b)
}

// ServerSettings describes how to reach the backend.
type ServerSettings struct {
	// URL is the backend base URL, e.g. http://127.0.0.1:8000.
	URL string
	// TimeoutSeconds bounds every request, including exports.
	TimeoutSeconds int
	// RateLimit is the client-side request pacing in requests per second.
	// Zero disables pacing.
	RateLimit int
	// Burst is the number of requests allowed to exceed RateLimit momentarily.
	Burst int
}

// Timeout returns TimeoutSeconds as a duration.
func (s ServerSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Validate checks the server settings.
func (s ServerSettings) Validate() error {
	u, err := url.Parse(s.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q must be absolute", ErrInvalidInput, s.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: server url scheme must be http or https", ErrInvalidInput)
	}
	if s.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidInput)
	}
	if s.RateLimit < 0 || s.Burst < 0 {
		return fmt.Errorf("%w: rate limit and burst must not be negative", ErrInvalidInput)
	}
	return nil
}

// SessionSettings controls session persistence.
type SessionSettings struct {
	Backend SessionBackend
	// ClearOnUnauthorized drops the stored token when the backend answers 401.
	ClearOnUnauthorized bool
}

// ExportSettings controls where exported documents are written.
type ExportSettings struct {
	// Dir is the download directory. Empty means the working directory.
	Dir string
}

// LogSettings controls the diagnostic log file.
type LogSettings struct {
	// File is the rotating log path used while the TUI owns the terminal.
	// Empty means the default location under the config directory.
	File string
}

// ClientSettings is the complete client configuration.
type ClientSettings struct {
	Server  ServerSettings
	Session SessionSettings
	Export  ExportSettings
	Log     LogSettings
}

// DefaultServerURL is the backend address used when none is configured.
const DefaultServerURL = "http://127.0.0.1:8000"

// DefaultClientSettings returns sensible defaults.
func DefaultClientSettings() ClientSettings {
	return ClientSettings{
		Server: ServerSettings{
			URL:            DefaultServerURL,
			TimeoutSeconds: 30,
			RateLimit:      10,
			Burst:          10,
		},
		Session: SessionSettings{
			Backend: SessionBackendFile,
		},
	}
}

// Validate checks the whole configuration.
func (c ClientSettings) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if !c.Session.Backend.IsValid() {
		return fmt.Errorf("%w: session backend %q", ErrInvalidInput, c.Session.Backend)
	}
	return nil
}
