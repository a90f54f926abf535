// Package register provides the sign-up form.
package register

import (
	"context"
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
	MsgRegisterFailed = "Registration failed. Try a different email or check the backend."
	MsgMissing        = "Email and password are required."
)

// State is the form state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

// View is the sign-up form. A successful registration returns to the
// sign-in form; it does not log in.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	auth     driving.AuthService
	email    *input.Field
	password *input.Field
	focus    int
	state    State
	errMsg   string
	err      error
	width    int
	height   int
}

// NewView creates the sign-up form.
func NewView(s *styles.Styles, auth driving.AuthService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		auth:     auth,
		email:    input.NewField(s, "Email", "you@example.com"),
		password: input.NewPasswordField(s, "Password", ""),
	}
}

func (v *View) fields() []*input.Field {
	return []*input.Field{v.email, v.password}
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.focusField(v.focus)
}

// Reset clears the form.
func (v *View) Reset() {
	for _, f := range v.fields() {
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

	case messages.RegisterFinished:
		if msg.Err != nil {
			logger.Error("register: %v", msg.Err)
			v.state = StateFailed
			v.err = msg.Err
			v.errMsg = MsgRegisterFailed
			return v, nil
		}
		v.state = StateSucceeded
		v.err = nil
		return v, messages.NavigateTo(router.PathLogin)

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
	case keymap.Matches(msg.String(), v.keymap.SwitchForm),
		keymap.Matches(msg.String(), v.keymap.Back):
		return v, messages.NavigateTo(router.PathLogin)
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyDown ||
		msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp:
		return v, v.focusField(1 - v.focus)
	case msg.Type == tea.KeyEnter:
		if v.focus == 0 {
			return v, v.focusField(1)
		}
		return v, v.submit()
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.email, cmd = v.email.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

func (v *View) focusField(i int) tea.Cmd {
	v.focus = i
	if i == 0 {
		v.password.Blur()
		return v.email.Focus()
	}
	v.email.Blur()
	return v.password.Focus()
}

func (v *View) submit() tea.Cmd {
	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()
	if email == "" || password == "" {
		v.state = StateFailed
		v.errMsg = MsgMissing
		return nil
	}

	v.state = StateSubmitting
	v.errMsg = ""
	auth := v.auth
	return func() tea.Msg {
		if auth == nil {
			return messages.RegisterFinished{Err: domain.ErrNotImplemented}
		}
		return messages.RegisterFinished{Err: auth.Register(context.Background(), email, password)}
	}
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Create your account"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Sign up to start generating AI-powered documents."))
	b.WriteString("\n\n")
	b.WriteString(v.email.View())
	b.WriteString("\n")
	b.WriteString(v.password.View())
	b.WriteString("\n")

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.state == StateSubmitting {
		b.WriteString(v.styles.DisabledButton.Render("Creating account..."))
	} else {
		b.WriteString(v.styles.Button.Render("[enter] Sign up"))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("Already have an account? [esc] Sign in"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, f := range v.fields() {
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

// Err returns the last registration error.
func (v *View) Err() error {
	return v.err
}
