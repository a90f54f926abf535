// Package projectdetail provides the view that owns one project's sections
// and comments. Every mutation except feedback is followed by a full
// re-fetch; the view never merges mutation results into its state.
package projectdetail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/alert"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/section"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/router"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// State is the view's load state.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateNotFound
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateNotFound:
		return "not_found"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExportFailedMessage returns the alert text for a failed export.
func ExportFailedMessage(format domain.DocumentFormat) string {
	return fmt.Sprintf("Failed to export %s", format.Label())
}

// View is the project detail view.
//
// Each Open and Leave bumps the generation. Results carry the generation
// that issued them and are dropped when it no longer matches, so a late
// response never touches a project the user has left.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	projects driving.ProjectService
	sections driving.SectionService
	exporter driving.ExportService

	projectID  int64
	generation uint64
	state      State
	project    *domain.Project
	refreshing bool

	presenters map[int64]*section.Presenter
	order      []int64
	focus      int

	exporting domain.DocumentFormat
	notice    string
	alert     *alert.Alert

	width  int
	height int
	err    error
}

// NewView creates the project detail view.
func NewView(
	s *styles.Styles,
	projects driving.ProjectService,
	sections driving.SectionService,
	exporter driving.ExportService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	return &View{
		styles:     s,
		keymap:     km,
		projects:   projects,
		sections:   sections,
		exporter:   exporter,
		presenters: make(map[int64]*section.Presenter),
		alert:      alert.New(s, km),
		width:      80,
	}
}

// Open mounts the view for a project and starts the initial fetch.
func (v *View) Open(projectID int64) tea.Cmd {
	v.generation++
	v.projectID = projectID
	v.state = StateLoading
	v.project = nil
	v.refreshing = false
	v.presenters = make(map[int64]*section.Presenter)
	v.order = nil
	v.focus = 0
	v.exporting = ""
	v.notice = ""
	v.err = nil
	v.alert.Dismiss()
	return v.fetch()
}

// Leave unmounts the view. Requests still in flight are not cancelled;
// their results are discarded when they arrive.
func (v *View) Leave() {
	v.generation++
}

// Init re-fetches the mounted project.
func (v *View) Init() tea.Cmd {
	if v.projectID == 0 {
		return nil
	}
	return v.fetch()
}

func (v *View) fetch() tea.Cmd {
	gen, id, svc := v.generation, v.projectID, v.projects
	return func() tea.Msg {
		if svc == nil {
			return messages.ProjectLoaded{Generation: gen, ProjectID: id, Err: domain.ErrNotImplemented}
		}
		p, err := svc.Get(context.Background(), id)
		return messages.ProjectLoaded{Generation: gen, ProjectID: id, Project: p, Err: err}
	}
}

func (v *View) refresh() tea.Cmd {
	v.refreshing = true
	return v.fetch()
}

func (v *View) refineCmd(sectionID int64, prompt string) tea.Cmd {
	gen, svc := v.generation, v.sections
	return func() tea.Msg {
		if svc == nil {
			return messages.SectionRefined{Generation: gen, SectionID: sectionID, Err: domain.ErrNotImplemented}
		}
		err := svc.Refine(context.Background(), sectionID, prompt)
		return messages.SectionRefined{Generation: gen, SectionID: sectionID, Err: err}
	}
}

func (v *View) feedbackCmd(sectionID int64, isLike bool) tea.Cmd {
	gen, svc := v.generation, v.sections
	return func() tea.Msg {
		if svc == nil {
			return messages.FeedbackSent{Generation: gen, SectionID: sectionID, Err: domain.ErrNotImplemented}
		}
		err := svc.Feedback(context.Background(), sectionID, isLike)
		return messages.FeedbackSent{Generation: gen, SectionID: sectionID, Err: err}
	}
}

func (v *View) commentCmd(sectionID int64, text string) tea.Cmd {
	gen, svc := v.generation, v.sections
	return func() tea.Msg {
		if svc == nil {
			return messages.CommentAdded{Generation: gen, SectionID: sectionID, Err: domain.ErrNotImplemented}
		}
		err := svc.AddComment(context.Background(), sectionID, text)
		return messages.CommentAdded{Generation: gen, SectionID: sectionID, Err: err}
	}
}

func (v *View) exportCmd(format domain.DocumentFormat) tea.Cmd {
	if v.project == nil || v.exporting != "" {
		return nil
	}
	v.exporting = format
	v.notice = ""
	gen, svc := v.generation, v.exporter
	project := *v.project
	return func() tea.Msg {
		if svc == nil {
			return messages.ExportFinished{Generation: gen, Format: format, Err: domain.ErrNotImplemented}
		}
		path, err := svc.Download(context.Background(), &project, format)
		return messages.ExportFinished{Generation: gen, Format: format, Path: path, Err: err}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ProjectLoaded:
		if v.stale(msg.Generation) {
			return v, nil
		}
		v.handleLoaded(msg)
		return v, nil

	case messages.RefineRequested:
		return v, v.refineCmd(msg.SectionID, msg.Prompt)

	case messages.FeedbackRequested:
		return v, v.feedbackCmd(msg.SectionID, msg.IsLike)

	case messages.CommentRequested:
		return v, v.commentCmd(msg.SectionID, msg.Text)

	case messages.SectionRefined:
		if v.stale(msg.Generation) {
			return v, nil
		}
		if p, ok := v.presenters[msg.SectionID]; ok {
			p.FinishRefine()
		}
		if msg.Err != nil {
			logger.Error("refining section %d: %v", msg.SectionID, msg.Err)
			return v, nil
		}
		return v, v.refresh()

	case messages.FeedbackSent:
		if v.stale(msg.Generation) {
			return v, nil
		}
		if msg.Err != nil {
			logger.Error("sending feedback for section %d: %v", msg.SectionID, msg.Err)
		}
		return v, nil

	case messages.CommentAdded:
		if v.stale(msg.Generation) {
			return v, nil
		}
		if msg.Err != nil {
			logger.Error("adding comment to section %d: %v", msg.SectionID, msg.Err)
			return v, nil
		}
		return v, v.refresh()

	case messages.ExportFinished:
		if v.stale(msg.Generation) {
			return v, nil
		}
		v.exporting = ""
		if msg.Err != nil {
			logger.Error("%s export of project %d: %v", msg.Format.Label(), v.projectID, msg.Err)
			v.err = msg.Err
			v.alert.Show(ExportFailedMessage(msg.Format))
			return v, nil
		}
		v.notice = "Saved " + msg.Path
		return v, nil

	case spinner.TickMsg:
		cmds := make([]tea.Cmd, 0, len(v.presenters))
		for _, p := range v.presenters {
			_, cmd := p.Update(msg)
			cmds = append(cmds, cmd)
		}
		return v, tea.Batch(cmds...)

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) stale(gen uint64) bool {
	if gen != v.generation {
		logger.Debug("dropping result from generation %d (current %d)", gen, v.generation)
		return true
	}
	return false
}

func (v *View) handleLoaded(msg messages.ProjectLoaded) {
	v.refreshing = false
	if msg.Err != nil {
		logger.Error("fetching project %d: %v", msg.ProjectID, msg.Err)
		if v.project != nil {
			// Keep the last good state after a failed re-fetch.
			return
		}
		v.err = msg.Err
		if errors.Is(msg.Err, domain.ErrNotFound) {
			v.state = StateNotFound
		} else {
			v.state = StateFailed
		}
		return
	}
	if msg.Project == nil {
		v.state = StateNotFound
		return
	}

	v.project = msg.Project
	v.state = StateLoaded
	v.err = nil
	v.syncPresenters()
}

// syncPresenters rebuilds the display order from the fetched project,
// reusing presenters by section ID so local refine state survives.
func (v *View) syncPresenters() {
	sorted := domain.SortSections(v.project.Sections)
	keep := make(map[int64]*section.Presenter, len(sorted))
	v.order = v.order[:0]
	for _, sec := range sorted {
		p, ok := v.presenters[sec.ID]
		if ok {
			p.SetSection(sec)
		} else {
			p = section.New(v.styles, v.keymap, sec)
			p.SetWidth(v.width)
		}
		keep[sec.ID] = p
		v.order = append(v.order, sec.ID)
	}
	v.presenters = keep
	if v.focus >= len(v.order) {
		v.focus = max(len(v.order)-1, 0)
	}
}

func (v *View) focused() *section.Presenter {
	if v.focus >= len(v.order) {
		return nil
	}
	return v.presenters[v.order[v.focus]]
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.alert.Update(msg) {
		return v, nil
	}

	if p := v.focused(); p != nil && p.Editing() {
		_, cmd := p.Update(msg)
		return v, cmd
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, messages.NavigateTo(router.PathProjects)
	case keymap.Matches(key, v.keymap.Reload):
		if v.project == nil {
			v.state = StateLoading
			return v, v.fetch()
		}
		return v, v.refresh()
	}

	if v.state != StateLoaded {
		return v, nil
	}

	switch {
	case keymap.Matches(key, v.keymap.ExportDOCX):
		return v, v.exportCmd(domain.FormatDOCX)
	case keymap.Matches(key, v.keymap.ExportPPTX):
		return v, v.exportCmd(domain.FormatPPTX)
	}

	p := v.focused()
	if p == nil {
		return v, nil
	}
	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.focus > 0 {
			v.focus--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.focus < len(v.order)-1 {
			v.focus++
		}
	case keymap.Matches(key, v.keymap.Refine):
		return v, p.FocusPrompt()
	case keymap.Matches(key, v.keymap.Comment):
		return v, p.FocusComments()
	case keymap.Matches(key, v.keymap.Like):
		return v, v.feedbackCmd(p.ID(), true)
	case keymap.Matches(key, v.keymap.Dislike):
		return v, v.feedbackCmd(p.ID(), false)
	}
	return v, nil
}

// View renders the project or its load state.
func (v *View) View() string {
	if v.alert.Visible() {
		return v.alert.View()
	}

	var b strings.Builder
	switch v.state {
	case StateLoading:
		b.WriteString(v.styles.Muted.Render("Loading project..."))
	case StateNotFound:
		b.WriteString(v.styles.Muted.Render("Project not found."))
	case StateFailed:
		b.WriteString(v.styles.Error.Render("Failed to load project."))
	case StateLoaded:
		b.WriteString(v.renderProject())
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(
		"[↑/↓] section  [r] refine  [c] comment  [+/-] like/dislike  [w] docx  [p] pptx  [ctrl+r] reload  [esc] back"))
	return b.String()
}

func (v *View) renderProject() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.project.Name))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(v.project.Summary()))
	if v.refreshing {
		b.WriteString("  ")
		b.WriteString(v.styles.Warning.Render("Refreshing..."))
	}
	b.WriteString("\n")

	if v.exporting != "" {
		b.WriteString(v.styles.DisabledButton.Render(fmt.Sprintf("Exporting %s...", v.exporting.Label())))
	} else {
		b.WriteString(v.styles.Button.Render("[w] Export DOCX"))
		b.WriteString("  ")
		b.WriteString(v.styles.Button.Render("[p] Export PPTX"))
	}
	if v.notice != "" {
		b.WriteString("  ")
		b.WriteString(v.styles.Success.Render(v.notice))
	}
	b.WriteString("\n\n")

	if len(v.order) == 0 {
		b.WriteString(v.styles.Muted.Render("No sections for this project."))
		return b.String()
	}

	if v.focus > 0 {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("↑ %d more above", v.focus)))
		b.WriteString("\n")
	}
	for i := v.focus; i < len(v.order); i++ {
		b.WriteString(v.presenters[v.order[i]].View(i == v.focus))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.alert.SetDimensions(width, height)
	for _, p := range v.presenters {
		p.SetWidth(width)
	}
}

// State returns the load state.
func (v *View) State() State {
	return v.state
}

// Project returns the last successfully loaded project.
func (v *View) Project() *domain.Project {
	return v.project
}

// ProjectID returns the mounted project ID.
func (v *View) ProjectID() int64 {
	return v.projectID
}

// Generation returns the current generation.
func (v *View) Generation() uint64 {
	return v.generation
}

// Refreshing reports whether a re-fetch is outstanding.
func (v *View) Refreshing() bool {
	return v.refreshing
}

// SectionOrder returns section IDs in display order.
func (v *View) SectionOrder() []int64 {
	return append([]int64(nil), v.order...)
}

// Presenter returns the presenter for a section.
func (v *View) Presenter(sectionID int64) (*section.Presenter, bool) {
	p, ok := v.presenters[sectionID]
	return p, ok
}

// FocusedSection returns the ID of the focused section, or 0.
func (v *View) FocusedSection() int64 {
	if p := v.focused(); p != nil {
		return p.ID()
	}
	return 0
}

// Alert returns the modal alert.
func (v *View) Alert() *alert.Alert {
	return v.alert
}

// Editing reports whether keys are going to a text input.
func (v *View) Editing() bool {
	p := v.focused()
	return p != nil && p.Editing()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
