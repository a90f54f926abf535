package driven

// SessionStore persists the session token across process restarts.
// There is at most one token; it is opaque to the client.
type SessionStore interface {
	// LoadToken returns the stored token.
	// Returns domain.ErrNotFound when no session is stored.
	LoadToken() (string, error)

	// SaveToken replaces the stored token.
	SaveToken(token string) error

	// DeleteToken removes the stored token. Deleting a missing token is not an error.
	DeleteToken() error

	// Close releases any resources held by the store.
	Close() error
}

// TokenProvider is the read side of the session as seen by the Gateway.
// It is implemented by the session service so that every request observes
// the token the rest of the process observes.
type TokenProvider interface {
	// Current returns the token and true when a session exists.
	Current() (string, bool)

	// Clear drops the session.
	Clear() error
}
