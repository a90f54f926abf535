// Package login provides the sign-in form.
package login

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/router"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// User-facing messages.
const (
	MsgInvalidToken = "Invalid token received"
	MsgLoginFailed  = "Login failed. Check your email/password."
	MsgMissing      = "Email and password are required."
)

// State is the form state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

// View is the sign-in form.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	auth     driving.AuthService
	fields   []*input.Field
	focus    int
	state    State
	errMsg   string
	err      error
	width    int
	height   int
	ready    bool
	username *input.Field
	password *input.Field
}

// NewView creates the sign-in form.
func NewView(s *styles.Styles, auth driving.AuthService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		auth:     auth,
		username: input.NewField(s, "Email", "you@example.com"),
		password: input.NewPasswordField(s, "Password", ""),
	}
	v.fields = []*input.Field{v.username, v.password}
	return v
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.focusField(v.focus)
}

// Reset clears the form.
func (v *View) Reset() {
	for _, f := range v.fields {
		f.Reset()
		f.Blur()
	}
	v.focus = 0
	v.state = StateIdle
	v.errMsg = ""
	v.err = nil
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.LoginFinished:
		return v.handleFinished(msg)

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.state == StateSubmitting {
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.SwitchForm):
		return v, messages.NavigateTo(router.PathRegister)
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyDown:
		return v, v.focusField((v.focus + 1) % len(v.fields))
	case msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp:
		return v, v.focusField((v.focus + len(v.fields) - 1) % len(v.fields))
	case msg.Type == tea.KeyEnter:
		if v.focus < len(v.fields)-1 {
			return v, v.focusField(v.focus + 1)
		}
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) focusField(i int) tea.Cmd {
	for _, f := range v.fields {
		f.Blur()
	}
	v.focus = i
	return v.fields[i].Focus()
}

func (v *View) submit() tea.Cmd {
	username := strings.TrimSpace(v.username.Value())
	password := v.password.Value()
	if username == "" || password == "" {
		v.state = StateFailed
		v.errMsg = MsgMissing
		return nil
	}

	v.state = StateSubmitting
	v.errMsg = ""
	auth := v.auth
	return func() tea.Msg {
		if auth == nil {
			return messages.LoginFinished{Err: domain.ErrNotImplemented}
		}
		return messages.LoginFinished{Err: auth.Login(context.Background(), username, password)}
	}
}

func (v *View) handleFinished(msg messages.LoginFinished) (*View, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("login: %v", msg.Err)
		v.state = StateFailed
		v.err = msg.Err
		v.errMsg = MsgLoginFailed
		if errors.Is(msg.Err, domain.ErrMissingToken) {
			v.errMsg = MsgInvalidToken
		}
		return v, nil
	}

	v.state = StateSucceeded
	v.err = nil
	v.password.Reset()
	return v, messages.NavigateTo(router.PathProjects)
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Welcome back"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Sign in to continue creating AI-powered documents."))
	b.WriteString("\n\n")

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.state == StateSubmitting {
		b.WriteString(v.styles.DisabledButton.Render("Signing in..."))
	} else {
		b.WriteString(v.styles.Button.Render("[enter] Sign in"))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("Don't have an account? [ctrl+n] Sign up"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	for _, f := range v.fields {
		f.SetWidth(min(width, 60))
	}
}

// State returns the form state.
func (v *View) State() State {
	return v.state
}

// ErrorMessage returns the message shown to the user, if any.
func (v *View) ErrorMessage() string {
	return v.errMsg
}

// Err returns the last login error.
func (v *View) Err() error {
	return v.err
}
