package domain

import "strings"

// DocumentPreview is the text extracted from an exported document.
type DocumentPreview struct {
	Format DocumentFormat `json:"format"`
	// Title comes from the document properties and may be empty.
	Title string `json:"title,omitempty"`
	// Paragraphs holds non-empty paragraphs in document order. For slide
	// decks the slides are concatenated in slide order.
	Paragraphs []string `json:"paragraphs"`
	// Slides is the slide count for PPTX and zero for DOCX.
	Slides int `json:"slides,omitempty"`
}

// Words counts whitespace-separated words across all paragraphs.
func (p *DocumentPreview) Words() int {
	n := 0
	for _, para := range p.Paragraphs {
		n += len(strings.Fields(para))
	}
	return n
}

// Text joins the paragraphs with newlines.
func (p *DocumentPreview) Text() string {
	return strings.Join(p.Paragraphs, "\n")
}
