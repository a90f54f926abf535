// Package projects provides the project list view with its create form.
package projects

import (
	"context"
	"fmt"
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

// MsgRequired is shown when the create form is submitted incomplete.
const MsgRequired = "Project name and main topic are required."

// Create form focus positions.
const (
	focusName = iota
	focusTopic
	focusType
	formFields
)

// View lists the session's projects. A failed fetch is logged and leaves
// the list empty.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	projects driving.ProjectService

	list     []domain.Project
	selected int
	loading  bool

	creating   bool // create form open
	submitting bool
	name       *input.Field
	topic      *input.Field
	docType    domain.DocumentFormat
	formFocus  int
	formErr    string

	width  int
	height int
	err    error
}

// NewView creates the project list view.
func NewView(s *styles.Styles, projects driving.ProjectService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		projects: projects,
		name:     input.NewField(s, "Project name", "Quarterly report"),
		topic:    input.NewField(s, "Main topic", "Renewable energy adoption in 2024"),
		docType:  domain.FormatDOCX,
	}
}

// Init loads the project list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadProjects()
}

// Reset returns the view to browsing with an empty form.
func (v *View) Reset() {
	v.closeForm()
	v.name.Reset()
	v.topic.Reset()
	v.docType = domain.FormatDOCX
	v.submitting = false
	v.selected = 0
	v.err = nil
}

func (v *View) loadProjects() tea.Cmd {
	svc := v.projects
	return func() tea.Msg {
		if svc == nil {
			return messages.ProjectsLoaded{Err: domain.ErrNotImplemented}
		}
		list, err := svc.List(context.Background())
		return messages.ProjectsLoaded{Projects: list, Err: err}
	}
}

func (v *View) createProject(p domain.NewProject) tea.Cmd {
	svc := v.projects
	return func() tea.Msg {
		if svc == nil {
			return messages.ProjectCreated{Err: domain.ErrNotImplemented}
		}
		created, err := svc.Create(context.Background(), p)
		return messages.ProjectCreated{Project: created, Err: err}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ProjectsLoaded:
		v.loading = false
		if msg.Err != nil {
			logger.Error("fetching projects: %v", msg.Err)
			v.err = msg.Err
			v.list = nil
			v.selected = 0
			return v, nil
		}
		v.err = nil
		v.list = msg.Projects
		if v.selected >= len(v.list) {
			v.selected = max(len(v.list)-1, 0)
		}
		return v, nil

	case messages.ProjectCreated:
		v.submitting = false
		if msg.Err != nil {
			logger.Error("creating project: %v", msg.Err)
			v.err = msg.Err
			return v, nil
		}
		v.name.Reset()
		v.topic.Reset()
		v.closeForm()
		v.loading = true
		return v, v.loadProjects()

	case tea.KeyMsg:
		if v.creating {
			return v.handleFormKey(msg)
		}
		return v.handleListKey(msg)
	}
	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.list)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Select):
		if v.selected < len(v.list) {
			return v, messages.NavigateTo(router.ProjectPath(v.list[v.selected].ID))
		}
	case keymap.Matches(key, v.keymap.NewProject):
		return v, v.openForm()
	case keymap.Matches(key, v.keymap.OpenRefine):
		return v, messages.NavigateTo(router.PathRefine)
	case keymap.Matches(key, v.keymap.Reload):
		v.loading = true
		return v, v.loadProjects()
	}
	return v, nil
}

func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.submitting {
		return v, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		v.closeForm()
		return v, nil
	case tea.KeyTab, tea.KeyDown:
		return v, v.focusForm((v.formFocus + 1) % formFields)
	case tea.KeyShiftTab, tea.KeyUp:
		return v, v.focusForm((v.formFocus + formFields - 1) % formFields)
	case tea.KeyLeft, tea.KeyRight:
		if v.formFocus == focusType {
			v.cycleType()
			return v, nil
		}
	case tea.KeyEnter:
		if v.formFocus < focusType {
			return v, v.focusForm(v.formFocus + 1)
		}
		return v, v.submit()
	}

	var cmd tea.Cmd
	switch v.formFocus {
	case focusName:
		v.name, cmd = v.name.Update(msg)
	case focusTopic:
		v.topic, cmd = v.topic.Update(msg)
	}
	return v, cmd
}

func (v *View) submit() tea.Cmd {
	p := domain.NewProject{
		Name:         strings.TrimSpace(v.name.Value()),
		DocumentType: v.docType,
		MainTopic:    strings.TrimSpace(v.topic.Value()),
	}
	if p.Name == "" || p.MainTopic == "" {
		v.formErr = MsgRequired
		return nil
	}
	v.formErr = ""
	v.submitting = true
	return v.createProject(p)
}

func (v *View) cycleType() {
	formats := domain.AllDocumentFormats()
	for i, f := range formats {
		if f == v.docType {
			v.docType = formats[(i+1)%len(formats)]
			return
		}
	}
	v.docType = formats[0]
}

func (v *View) openForm() tea.Cmd {
	v.creating = true
	v.formErr = ""
	return v.focusForm(focusName)
}

func (v *View) closeForm() {
	v.creating = false
	v.formErr = ""
	v.name.Blur()
	v.topic.Blur()
}

func (v *View) focusForm(i int) tea.Cmd {
	v.formFocus = i
	v.name.Blur()
	v.topic.Blur()
	switch i {
	case focusName:
		return v.name.Focus()
	case focusTopic:
		return v.topic.Focus()
	}
	return nil
}

// View renders the list and, when open, the create form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Your Projects"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render("AI-generated Word & PowerPoint documents"))
	b.WriteString("\n\n")

	if v.creating {
		b.WriteString(v.renderForm())
		b.WriteString("\n\n")
	}

	switch {
	case v.loading && len(v.list) == 0:
		b.WriteString(v.styles.Muted.Render("Loading projects..."))
	case len(v.list) == 0:
		b.WriteString(v.styles.Muted.Render("No projects yet."))
	default:
		for i := range v.list {
			b.WriteString(v.renderProject(i, &v.list[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] open  [n] new project  [t] refine text  [ctrl+r] reload  [ctrl+l] logout"))
	return b.String()
}

func (v *View) renderProject(index int, p *domain.Project) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}
	summary := p.Summary()
	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, p.Name)) +
			"  " + v.styles.Muted.Render(summary) +
			"  " + v.styles.Button.Render("Open project →")
	}
	return v.styles.Normal.Render(indicator+p.Name) + "  " + v.styles.Muted.Render(summary)
}

func (v *View) renderForm() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Create new project"))
	b.WriteString("\n")
	b.WriteString(v.name.View())
	b.WriteString("\n")
	b.WriteString(v.topic.View())
	b.WriteString("\n")

	b.WriteString(v.styles.Muted.Render("Document type"))
	b.WriteString("\n")
	for _, f := range domain.AllDocumentFormats() {
		label := fmt.Sprintf(" %s ", f.Description())
		switch {
		case f == v.docType && v.formFocus == focusType:
			b.WriteString(v.styles.Selected.Render(label))
		case f == v.docType:
			b.WriteString(v.styles.Subtitle.Render("[" + f.Description() + "]"))
		default:
			b.WriteString(v.styles.Muted.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	if v.formErr != "" {
		b.WriteString(v.styles.Error.Render(v.formErr))
		b.WriteString("\n")
	}
	if v.submitting {
		b.WriteString(v.styles.DisabledButton.Render("Creating..."))
	} else {
		b.WriteString(v.styles.Button.Render("[enter] Create project"))
		b.WriteString("  ")
		b.WriteString(v.styles.Help.Render("[esc] cancel"))
	}
	return v.styles.Card.Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.name.SetWidth(min(width-4, 60))
	v.topic.SetWidth(min(width-4, 60))
}

// Projects returns the displayed projects.
func (v *View) Projects() []domain.Project {
	return v.list
}

// SelectedIndex returns the highlighted project index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Creating reports whether the create form is open.
func (v *View) Creating() bool {
	return v.creating
}

// Submitting reports whether a create request is outstanding.
func (v *View) Submitting() bool {
	return v.submitting
}

// Editing reports whether keys are going to a text input.
func (v *View) Editing() bool {
	return v.creating
}

// Err returns the last error, which is logged but not displayed.
func (v *View) Err() error {
	return v.err
}
