package driving

// SessionService owns the authenticated identity of the current user.
// It is the single source of truth for the token; the Gateway, the route
// guard and the CLI all read it from here.
type SessionService interface {
	// Current returns the token and true when a session exists.
	Current() (string, bool)

	// IsAuthenticated reports whether a session exists.
	IsAuthenticated() bool

	// Set persists token and makes it visible to subsequent requests.
	Set(token string) error

	// Clear removes the session.
	Clear() error
}
