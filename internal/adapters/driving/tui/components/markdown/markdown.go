// Package markdown renders backend-generated markdown for the terminal.
package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const minWidth = 20

var (
	renderersMu sync.Mutex
	// Renderers are cached by style and wrap width. A fixed style is used
	// instead of WithAutoStyle, which queries the terminal and can block.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render renders md wrapped at width. It returns md unchanged when
// rendering fails and "" for blank input.
func Render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}

	r, err := renderer(style(), width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func renderer(styleName string, width int) (*glamour.TermRenderer, error) {
	key := styleName + ":" + strconv.Itoa(width)

	renderersMu.Lock()
	defer renderersMu.Unlock()
	if r, ok := renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// style is resolved once; the background probe may touch the terminal.
var style = sync.OnceValue(func() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
})
