package driving

import "context"

// AuthService performs the login and registration flows.
type AuthService interface {
	// Login exchanges credentials for a token and stores it as the session.
	// The session is untouched on any failure.
	Login(ctx context.Context, username, password string) error

	// Register creates an account. It never logs in.
	Register(ctx context.Context, email, password string) error

	// Logout clears the session.
	Logout() error
}
