package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// Backend auth endpoints.
const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"

	// passwordGrant is the grant type the backend's token endpoint requires.
	passwordGrant = "password"
)

// tokenResponse is the login response body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService performs login, registration and logout.
type AuthService struct {
	gateway driven.Gateway
	session driving.SessionService
}

// NewAuthService creates a new auth service.
func NewAuthService(gateway driven.Gateway, session driving.SessionService) *AuthService {
	return &AuthService{
		gateway: gateway,
		session: session,
	}
}

// Login exchanges credentials for a token and stores it as the session.
// A response without a token fails with domain.ErrMissingToken.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	if s.gateway == nil || s.session == nil {
		return domain.ErrNotImplemented
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", passwordGrant)

	resp, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Form:   form,
		Kind:   driven.ResponseJSON,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	var token tokenResponse
	if err := decodeJSON(resp, "login", &token); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMissingToken, err)
	}
	if token.AccessToken == "" {
		return domain.ErrMissingToken
	}
	if token.TokenType != "" && !strings.EqualFold(token.TokenType, "bearer") {
		logger.Warn("Unexpected token type %q, using it as a bearer token", token.TokenType)
	}

	if err := s.session.Set(token.AccessToken); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	logger.Info("Logged in as %s", username)
	return nil
}

// Register creates an account. The session is not touched.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	_, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodPost,
		Path:   registerPath,
		JSON:   registerRequest{Email: email, Password: password},
		Kind:   driven.ResponseJSON,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	logger.Info("Registered %s", email)
	return nil
}

// Logout clears the session.
func (s *AuthService) Logout() error {
	if s.session == nil {
		return domain.ErrNotImplemented
	}
	return s.session.Clear()
}
