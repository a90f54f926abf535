package register

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
)

// MockAuthService implements driving.AuthService for testing.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, email, password string) error
	registered   []string
	logins       int
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) error {
	m.logins++
	return nil
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) error {
	m.registered = append(m.registered, email)
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return nil
}

func (m *MockAuthService) Logout() error {
	return nil
}

func fillForm(v *View, email, pass string) {
	v.Init()
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(email)})
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(pass)})
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, StateIdle, v.State())
	assert.Contains(t, v.View(), "Create your account")
}

func TestView_SubmitRegistersWithoutLogin(t *testing.T) {
	mock := &MockAuthService{}
	v := NewView(nil, mock)
	fillForm(v, "  grace@example.com ", "pw")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Contains(t, v.View(), "Creating account...")
	assert.Equal(t, messages.RegisterFinished{}, cmd())
	assert.Equal(t, []string{"grace@example.com"}, mock.registered)
	assert.Equal(t, 0, mock.logins)
}

func TestView_SuccessNavigatesToLogin(t *testing.T) {
	v := NewView(nil, &MockAuthService{})

	_, cmd := v.Update(messages.RegisterFinished{})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.Navigate{Path: "/login"}, cmd())
	assert.Equal(t, StateSucceeded, v.State())
}

func TestView_FailureShowsMessage(t *testing.T) {
	v := NewView(nil, &MockAuthService{})

	_, cmd := v.Update(messages.RegisterFinished{Err: errors.New("409")})

	assert.Nil(t, cmd)
	assert.Equal(t, StateFailed, v.State())
	assert.Equal(t, MsgRegisterFailed, v.ErrorMessage())
	assert.Contains(t, v.View(), MsgRegisterFailed)
}

func TestView_BlankRejected(t *testing.T) {
	mock := &MockAuthService{}
	v := NewView(nil, mock)
	fillForm(v, "", "pw")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, MsgMissing, v.ErrorMessage())
	assert.Empty(t, mock.registered)
}

func TestView_EscReturnsToLogin(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.Navigate{Path: "/login"}, cmd())
}

func TestView_Reset(t *testing.T) {
	v := NewView(nil, &MockAuthService{})
	fillForm(v, "a@b.c", "pw")
	v.Update(messages.RegisterFinished{Err: errors.New("x")})

	v.Reset()

	assert.Equal(t, StateIdle, v.State())
	assert.Equal(t, "", v.email.Value())
	assert.Equal(t, "", v.ErrorMessage())
}
