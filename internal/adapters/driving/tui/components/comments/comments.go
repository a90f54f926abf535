// Package comments provides the per-section comment list and its input line.
package comments

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// List displays a section's comments and a single-line input for new ones.
type List struct {
	styles    *styles.Styles
	sectionID int64
	comments  []domain.Comment
	input     *input.Field
}

// New creates an empty list for a section.
func New(s *styles.Styles, sectionID int64) *List {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &List{
		styles:    s,
		sectionID: sectionID,
		input:     input.NewField(s, "", "Add a comment..."),
	}
}

// SetComments replaces the displayed comments. The input is left alone.
func (l *List) SetComments(comments []domain.Comment) {
	l.comments = comments
}

// Comments returns the displayed comments.
func (l *List) Comments() []domain.Comment {
	return l.comments
}

// Submit takes the typed text. Blank or whitespace-only text is a no-op
// and returns false. Otherwise the input is cleared right away, whatever
// happens to the request, and the trimmed text is returned.
func (l *List) Submit() (string, bool) {
	text := strings.TrimSpace(l.input.Value())
	if text == "" {
		return "", false
	}
	l.input.Reset()
	return text, true
}

// Update handles messages while the input has focus. Enter submits,
// producing a CommentRequested message.
func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		text, ok := l.Submit()
		if !ok {
			return l, nil
		}
		sectionID := l.sectionID
		return l, func() tea.Msg {
			return messages.CommentRequested{SectionID: sectionID, Text: text}
		}
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// View renders the comments followed by the input line.
func (l *List) View() string {
	var b strings.Builder
	b.WriteString(l.styles.Subtitle.Render("Comments"))
	b.WriteString("\n")
	if len(l.comments) == 0 {
		b.WriteString(l.styles.Muted.Render("No comments yet."))
		b.WriteString("\n")
	}
	for _, c := range l.comments {
		b.WriteString(l.styles.Normal.Render("• " + c.Text))
		b.WriteString("\n")
	}
	if l.input.Focused() || l.input.Value() != "" {
		b.WriteString(l.input.View())
	}
	return strings.TrimRight(b.String(), "\n")
}

// Value returns the text typed so far.
func (l *List) Value() string {
	return l.input.Value()
}

// SetValue sets the typed text.
func (l *List) SetValue(v string) {
	l.input.SetValue(v)
}

// Focus focuses the input.
func (l *List) Focus() tea.Cmd {
	return l.input.Focus()
}

// Blur removes focus from the input.
func (l *List) Blur() {
	l.input.Blur()
}

// Focused reports whether the input has focus.
func (l *List) Focused() bool {
	return l.input.Focused()
}

// SetWidth sets the input width.
func (l *List) SetWidth(width int) {
	l.input.SetWidth(width)
}
