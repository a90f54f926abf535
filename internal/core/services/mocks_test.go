package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// mockGateway records every request and answers with DoFunc.
type mockGateway struct {
	mu       sync.Mutex
	requests []driven.Request
	DoFunc   func(ctx context.Context, req driven.Request) (*driven.Response, error)
}

func (g *mockGateway) Do(ctx context.Context, req driven.Request) (*driven.Response, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()
	if g.DoFunc != nil {
		return g.DoFunc(ctx, req)
	}
	return &driven.Response{StatusCode: 200, Body: []byte("{}")}, nil
}

func (g *mockGateway) Requests() []driven.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]driven.Request(nil), g.requests...)
}

// respondWith returns a DoFunc that always answers with v encoded as JSON.
func respondWith(t *testing.T, v any) func(context.Context, driven.Request) (*driven.Response, error) {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return func(context.Context, driven.Request) (*driven.Response, error) {
		return &driven.Response{StatusCode: 200, ContentType: "application/json", Body: body}, nil
	}
}

// failWith returns a DoFunc that always fails with err.
func failWith(err error) func(context.Context, driven.Request) (*driven.Response, error) {
	return func(context.Context, driven.Request) (*driven.Response, error) {
		return nil, err
	}
}

// failingSessionStore fails every write.
type failingSessionStore struct {
	token string
}

var errDiskFull = errors.New("disk full")

func (s *failingSessionStore) LoadToken() (string, error) { return s.token, nil }
func (s *failingSessionStore) SaveToken(string) error     { return errDiskFull }
func (s *failingSessionStore) DeleteToken() error         { return errDiskFull }
func (s *failingSessionStore) Close() error               { return nil }
