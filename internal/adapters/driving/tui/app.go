package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/router"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/views/login"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/views/projectdetail"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/views/projects"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/views/refine"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/views/register"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Title is shown in the header and the terminal window title.
const Title = "AI DOC PLATFORM"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	loginView    *login.View
	registerView *register.View
	projectsView *projects.View
	detailView   *projectdetail.View
	refineView   *refine.View
	settingsView *settings.View
	statusBar    *status.Bar

	// route is the route currently displayed.
	route router.Route

	// startPath is the first navigation issued by Init.
	startPath string

	width  int
	height int
	ready  bool
	err    error
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		loginView:    login.NewView(s, ports.Auth),
		registerView: register.NewView(s, ports.Auth),
		projectsView: projects.NewView(s, ports.Projects),
		detailView:   projectdetail.NewView(s, ports.Projects, ports.Sections, ports.Export),
		refineView:   refine.NewView(s, ports.Refiner),
		settingsView: settings.NewView(s, ports.Settings),
		statusBar:    status.NewBar(s, km),
		route:        router.Resolve(router.PathRoot, ports.Session.IsAuthenticated()),
		startPath:    router.PathRoot,
	}, nil
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// WithStartPath sets the route entered when the program starts.
// The guard still applies, so a protected path without a session lands on login.
func (a *App) WithStartPath(path string) *App {
	a.startPath = path
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("aidoc"),
		messages.NavigateTo(a.startPath),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Logout) && a.ports.Session.IsAuthenticated():
			return a, a.logout()
		case key.Matches(msg, a.keymap.Settings) && !a.editing():
			return a, a.navigate(router.PathSettings)
		}
		cmd = a.updateCurrent(msg)

	case messages.Navigate:
		return a, a.navigate(msg.Path)

	case messages.Quit:
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
		if msg.Err != nil {
			a.statusBar.SetState(status.StateError, msg.Err.Error())
		}
		return a, nil

	case messages.LoginFinished:
		a.loginView, cmd = a.loginView.Update(msg)

	case messages.RegisterFinished:
		a.registerView, cmd = a.registerView.Update(msg)

	case messages.ProjectsLoaded, messages.ProjectCreated:
		a.projectsView, cmd = a.projectsView.Update(msg)

	case messages.ProjectLoaded, messages.SectionRefined, messages.FeedbackSent,
		messages.CommentAdded, messages.ExportFinished, spinner.TickMsg,
		messages.RefineRequested, messages.FeedbackRequested, messages.CommentRequested:
		// The detail view discards results from a generation it has left.
		a.detailView, cmd = a.detailView.Update(msg)

	case messages.TextRefined:
		a.refineView, cmd = a.refineView.Update(msg)

	case messages.SettingsLoaded, messages.SettingSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)

	default:
		cmd = a.updateCurrent(msg)
	}

	// The session can disappear under any route, e.g. a 401 with
	// session.clear_on_unauthorized set.
	if a.route.Protected() && !a.ports.Session.IsAuthenticated() {
		return a, tea.Batch(cmd, a.navigate(router.PathLogin))
	}
	return a, cmd
}

// updateCurrent forwards msg to the view of the current route.
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.route.View {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewRegister:
		a.registerView, cmd = a.registerView.Update(msg)
	case messages.ViewProjects:
		a.projectsView, cmd = a.projectsView.Update(msg)
	case messages.ViewProjectDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewRefine:
		a.refineView, cmd = a.refineView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}
	return cmd
}

// navigate resolves path against the guard and enters the resulting route.
func (a *App) navigate(path string) tea.Cmd {
	route := router.Resolve(path, a.ports.Session.IsAuthenticated())
	logger.Debug("navigate %q -> %s", path, route.Path)

	if a.route.View == messages.ViewProjectDetail {
		a.detailView.Leave()
	}
	a.route = route
	a.err = nil
	a.statusBar.Clear()

	switch route.View {
	case messages.ViewLogin:
		a.statusBar.SetHints(a.keymap.AuthHelp())
		a.loginView.Reset()
		return a.loginView.Init()
	case messages.ViewRegister:
		a.statusBar.SetHints(a.keymap.AuthHelp())
		a.registerView.Reset()
		return a.registerView.Init()
	case messages.ViewProjects:
		a.statusBar.SetHints(a.keymap.ProjectsHelp())
		a.projectsView.Reset()
		return a.projectsView.Init()
	case messages.ViewProjectDetail:
		a.statusBar.SetHints(a.keymap.DetailHelp())
		return a.detailView.Open(route.ProjectID)
	case messages.ViewRefine:
		a.statusBar.SetHints(nil)
		a.refineView.Reset()
		return a.refineView.Init()
	case messages.ViewSettings:
		a.statusBar.SetHints(nil)
		a.settingsView.Reset()
		return a.settingsView.Init()
	}
	return nil
}

// logout clears the session and routes to login without waiting on anything.
func (a *App) logout() tea.Cmd {
	if err := a.ports.Auth.Logout(); err != nil {
		logger.Error("logging out: %v", err)
	}
	return a.navigate(router.PathLogin)
}

// editing reports whether the current view has a text input focused.
func (a *App) editing() bool {
	switch a.route.View {
	case messages.ViewProjects:
		return a.projectsView.Editing()
	case messages.ViewProjectDetail:
		return a.detailView.Editing()
	case messages.ViewSettings:
		return a.settingsView.Editing()
	}
	return false
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		a.renderBody(),
		a.statusBar.View(),
	)
}

func (a *App) renderHeader() string {
	left := a.styles.Title.Render(Title) + "  " + a.styles.Muted.Render(a.route.Path)
	right := ""
	if a.ports.Session.IsAuthenticated() {
		right = a.styles.Button.Render("[ctrl+l] Logout")
	}
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return a.styles.Header.Width(a.width).Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

func (a *App) renderBody() string {
	switch a.route.View {
	case messages.ViewLogin:
		return a.loginView.View()
	case messages.ViewRegister:
		return a.registerView.View()
	case messages.ViewProjects:
		return a.projectsView.View()
	case messages.ViewProjectDetail:
		return a.detailView.View()
	case messages.ViewRefine:
		return a.refineView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	}
	return ""
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the view of the current route.
func (a *App) CurrentView() messages.ViewType {
	return a.route.View
}

// Route returns the current route.
func (a *App) Route() router.Route {
	return a.route
}

// Err returns the last reported error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// Header and status bar take one line each.
	body := max(height-2, 1)
	a.loginView.SetDimensions(width, body)
	a.registerView.SetDimensions(width, body)
	a.projectsView.SetDimensions(width, body)
	a.detailView.SetDimensions(width, body)
	a.refineView.SetDimensions(width, body)
	a.settingsView.SetDimensions(width, body)
	a.statusBar.SetWidth(width)
}
