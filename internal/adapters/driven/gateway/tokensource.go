package gateway

import (
	"golang.org/x/oauth2"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// sessionTokenSource adapts the session to oauth2.TokenSource so the
// bearer header is written by oauth2.Token.SetAuthHeader.
type sessionTokenSource struct {
	tokens driven.TokenProvider
}

// NewTokenSource creates an oauth2.TokenSource reading the current session.
// Token returns domain.ErrAuthRequired when no session exists.
func NewTokenSource(tokens driven.TokenProvider) oauth2.TokenSource {
	return &sessionTokenSource{tokens: tokens}
}

// Token implements oauth2.TokenSource.
func (s *sessionTokenSource) Token() (*oauth2.Token, error) {
	if s.tokens == nil {
		return nil, domain.ErrAuthRequired
	}
	accessToken, ok := s.tokens.Current()
	if !ok {
		return nil, domain.ErrAuthRequired
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
