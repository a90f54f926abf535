package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Blank(t *testing.T) {
	assert.Equal(t, "", Render("", 80))
	assert.Equal(t, "", Render("  \n\t", 80))
}

func TestRender_KeepsWords(t *testing.T) {
	out := Render("# Introduction\n\nThis is the **introduction**.", 60)

	assert.Contains(t, out, "Introduction")
	assert.Contains(t, out, "introduction")
}

func TestRender_CachesPerWidth(t *testing.T) {
	Render("one", 40)
	Render("two", 40)
	Render("three", 41)

	renderersMu.Lock()
	defer renderersMu.Unlock()
	assert.Contains(t, renderers, style()+":40")
	assert.Contains(t, renderers, style()+":41")
}

func TestRender_ClampsWidth(t *testing.T) {
	out := Render("narrow column", 1)

	assert.Contains(t, out, "narrow")
	renderersMu.Lock()
	defer renderersMu.Unlock()
	assert.Contains(t, renderers, style()+":20")
}
