// Package refine provides the freeform text refine tool.
package refine

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/markdown"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/router"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// MsgRefineFailed replaces the output when a request fails.
const MsgRefineFailed = "Error refining content."

const (
	focusText = iota
	focusInstruction
)

// View sends arbitrary text and an instruction to the refine endpoint
// and shows the result.
type View struct {
	styles      *styles.Styles
	refiner     driving.TextRefiner
	text        textarea.Model
	instruction *input.Field
	focus       int
	running     bool
	result      string
	failed      bool
	err         error
	width       int
	height      int
}

// NewView creates the refine tool.
func NewView(s *styles.Styles, refiner driving.TextRefiner) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	ta := textarea.New()
	ta.Placeholder = "Enter content to refine..."
	ta.ShowLineNumbers = false
	ta.SetHeight(8)
	ta.SetWidth(70)

	return &View{
		styles:      s,
		refiner:     refiner,
		text:        ta,
		instruction: input.NewField(s, "Instruction", "Enter refinement instruction..."),
	}
}

// Init focuses the text area.
func (v *View) Init() tea.Cmd {
	return v.focusOn(focusText)
}

// Reset clears the inputs and the result.
func (v *View) Reset() {
	v.text.Reset()
	v.instruction.Reset()
	v.focus = focusText
	v.running = false
	v.result = ""
	v.failed = false
	v.err = nil
}

func (v *View) focusOn(i int) tea.Cmd {
	v.focus = i
	if i == focusText {
		v.instruction.Blur()
		return v.text.Focus()
	}
	v.text.Blur()
	return v.instruction.Focus()
}

func (v *View) submit() tea.Cmd {
	if v.running {
		return nil
	}
	v.running = true
	text, instruction := v.text.Value(), v.instruction.Value()
	svc := v.refiner
	return func() tea.Msg {
		if svc == nil {
			return messages.TextRefined{Err: domain.ErrNotImplemented}
		}
		out, err := svc.RefineText(context.Background(), text, instruction)
		return messages.TextRefined{Text: out, Err: err}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.TextRefined:
		v.running = false
		if msg.Err != nil {
			logger.Error("refining text: %v", msg.Err)
			v.err = msg.Err
			v.failed = true
			v.result = MsgRefineFailed
			return v, nil
		}
		v.err = nil
		v.failed = false
		v.result = msg.Text
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, messages.NavigateTo(router.PathProjects)
		case tea.KeyTab, tea.KeyShiftTab:
			return v, v.focusOn(1 - v.focus)
		case tea.KeyCtrlS:
			return v, v.submit()
		case tea.KeyEnter:
			if v.focus == focusInstruction {
				return v, v.submit()
			}
		}

		var cmd tea.Cmd
		if v.focus == focusText {
			v.text, cmd = v.text.Update(msg)
		} else {
			v.instruction, cmd = v.instruction.Update(msg)
		}
		return v, cmd
	}
	return v, nil
}

// View renders the tool.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Refine Text"))
	b.WriteString("\n\n")
	frame := v.styles.InputField
	if v.focus == focusText {
		frame = v.styles.FocusedInputField
	}
	b.WriteString(frame.Render(v.text.View()))
	b.WriteString("\n")
	b.WriteString(v.instruction.View())
	b.WriteString("\n\n")

	if v.running {
		b.WriteString(v.styles.DisabledButton.Render("Refining..."))
	} else {
		b.WriteString(v.styles.Button.Render("[ctrl+s] Refine"))
	}

	if v.result != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Subtitle.Render("Refined Output"))
		b.WriteString("\n")
		if v.failed {
			b.WriteString(v.styles.Error.Render(v.result))
		} else {
			b.WriteString(markdown.Render(v.result, v.width-4))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[tab] switch field  [ctrl+s] refine  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.text.SetWidth(max(min(width-4, 100), 20))
	v.instruction.SetWidth(min(width, 100))
}

// Result returns the displayed output.
func (v *View) Result() string {
	return v.result
}

// Running reports whether a request is outstanding.
func (v *View) Running() bool {
	return v.running
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
