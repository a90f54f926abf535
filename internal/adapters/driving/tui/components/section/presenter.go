// Package section provides the per-section presenter used by the project detail view.
package section

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/comments"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/markdown"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

const noContent = "(No content yet)"

// Presenter renders one section and turns key presses into refine, feedback
// and comment requests. Its refine state is idle or refining; while refining
// a second refine is ignored. The presenter never calls a service itself.
type Presenter struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	section  domain.Section
	prompt   *input.Field
	comments *comments.List
	spinner  spinner.Model
	refining bool
	width    int
}

// New creates an idle presenter for sec.
func New(s *styles.Styles, km *keymap.KeyMap, sec domain.Section) *Presenter {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Warning))
	p := &Presenter{
		styles:   s,
		keymap:   km,
		prompt:   input.NewField(s, "", "How should the AI refine this section?"),
		comments: comments.New(s, sec.ID),
		spinner:  sp,
		width:    80,
	}
	p.SetSection(sec)
	return p
}

// SetSection replaces the displayed data after a fetch. Refine state,
// the typed prompt and the comment draft survive.
func (p *Presenter) SetSection(sec domain.Section) {
	p.section = sec
	p.comments.SetComments(sec.Comments)
}

// Section returns the displayed section.
func (p *Presenter) Section() domain.Section {
	return p.section
}

// ID returns the section ID.
func (p *Presenter) ID() int64 {
	return p.section.ID
}

// Refining reports whether a refine request is outstanding.
func (p *Presenter) Refining() bool {
	return p.refining
}

// BeginRefine moves to refining and returns the trimmed prompt. It
// returns false, changing nothing, while already refining or when the
// prompt is blank.
func (p *Presenter) BeginRefine() (string, tea.Cmd, bool) {
	if p.refining {
		return "", nil, false
	}
	prompt := strings.TrimSpace(p.prompt.Value())
	if prompt == "" {
		return "", nil, false
	}
	p.refining = true
	p.prompt.Blur()
	return prompt, p.spinner.Tick, true
}

// FinishRefine returns to idle. The prompt is cleared whether or not
// the request succeeded.
func (p *Presenter) FinishRefine() {
	p.refining = false
	p.prompt.Reset()
}

// Prompt returns the typed refine prompt.
func (p *Presenter) Prompt() string {
	return p.prompt.Value()
}

// SetPrompt sets the refine prompt.
func (p *Presenter) SetPrompt(v string) {
	p.prompt.SetValue(v)
}

// Comments returns the comment sub-list.
func (p *Presenter) Comments() *comments.List {
	return p.comments
}

// FocusPrompt focuses the refine prompt. It does nothing while refining.
func (p *Presenter) FocusPrompt() tea.Cmd {
	if p.refining {
		return nil
	}
	p.comments.Blur()
	return p.prompt.Focus()
}

// FocusComments focuses the comment input.
func (p *Presenter) FocusComments() tea.Cmd {
	p.prompt.Blur()
	return p.comments.Focus()
}

// Blur removes focus from both inputs.
func (p *Presenter) Blur() {
	p.prompt.Blur()
	p.comments.Blur()
}

// Editing reports whether one of the inputs has focus.
func (p *Presenter) Editing() bool {
	return p.prompt.Focused() || p.comments.Focused()
}

// Update handles spinner ticks and, while an input has focus, key presses.
// Enter on the prompt emits RefineRequested; esc leaves the input.
func (p *Presenter) Update(msg tea.Msg) (*Presenter, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.refining {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), p.keymap.Back) {
			p.Blur()
			return p, nil
		}
		if p.prompt.Focused() {
			if msg.Type == tea.KeyEnter {
				return p, p.submitRefine()
			}
			var cmd tea.Cmd
			p.prompt, cmd = p.prompt.Update(msg)
			return p, cmd
		}
		if p.comments.Focused() {
			var cmd tea.Cmd
			p.comments, cmd = p.comments.Update(msg)
			return p, cmd
		}
	}
	return p, nil
}

func (p *Presenter) submitRefine() tea.Cmd {
	prompt, tick, ok := p.BeginRefine()
	if !ok {
		return nil
	}
	id := p.section.ID
	return tea.Batch(tick, func() tea.Msg {
		return messages.RefineRequested{SectionID: id, Prompt: prompt}
	})
}

// SetWidth sets the card width.
func (p *Presenter) SetWidth(width int) {
	p.width = width
	p.prompt.SetWidth(width - 4)
	p.comments.SetWidth(width - 4)
}

// View renders the section card; focused selects the highlighted frame.
func (p *Presenter) View(focused bool) string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(p.section.Title))
	b.WriteString("\n")

	content := markdown.Render(p.section.Content, p.width-6)
	if content == "" {
		content = p.styles.Muted.Render(noContent)
	}
	b.WriteString(content)
	b.WriteString("\n\n")

	if p.prompt.Focused() || (p.prompt.Value() != "" && !p.refining) {
		b.WriteString(p.prompt.View())
		b.WriteString("\n")
	}
	b.WriteString(p.renderActions())
	b.WriteString("\n\n")
	b.WriteString(p.comments.View())

	frame := p.styles.Card
	if focused {
		frame = p.styles.FocusedCard
	}
	return frame.Width(p.width - 2).Render(b.String())
}

func (p *Presenter) renderActions() string {
	var refine string
	if p.refining {
		refine = p.spinner.View() + " " + p.styles.DisabledButton.Render("Refining...")
	} else {
		refine = p.styles.Button.Render("[r] Refine with AI")
	}
	return refine + "   " +
		p.styles.Normal.Render("[+] Like") + "  " +
		p.styles.Normal.Render("[-] Dislike") + "  " +
		p.styles.Normal.Render("[c] Comment")
}
