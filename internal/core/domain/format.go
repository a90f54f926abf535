package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DocumentFormat is the binary format a project targets and exports to.
type DocumentFormat string

// Supported document formats.
const (
	// FormatDOCX is a word-processor document.
	FormatDOCX DocumentFormat = "docx"

	// FormatPPTX is a slide deck.
	FormatPPTX DocumentFormat = "pptx"
)

// AllDocumentFormats returns the formats in display order.
func AllDocumentFormats() []DocumentFormat {
	return []DocumentFormat{FormatDOCX, FormatPPTX}
}

// ParseDocumentFormat accepts "docx" or "pptx" in any case.
func ParseDocumentFormat(s string) (DocumentFormat, error) {
	f := DocumentFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// IsValid returns true if the format is recognised.
func (f DocumentFormat) IsValid() bool {
	switch f {
	case FormatDOCX, FormatPPTX:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f DocumentFormat) String() string {
	return string(f)
}

// Extension returns the file extension without the leading dot.
func (f DocumentFormat) Extension() string {
	return string(f)
}

// Label returns the upper-case name used in the UI.
func (f DocumentFormat) Label() string {
	return strings.ToUpper(string(f))
}

// Description returns a human-readable description of the format.
func (f DocumentFormat) Description() string {
	switch f {
	case FormatDOCX:
		return "Word document (.docx)"
	case FormatPPTX:
		return "PowerPoint presentation (.pptx)"
	default:
		return "Unknown"
	}
}

// ExportFilename builds "<project-name>-<project-id>.<ext>".
// An empty name falls back to "project"; path separators are replaced
// so the result is always a single path element.
func ExportFilename(name string, id int64, format DocumentFormat) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "project"
	}
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	return name + "-" + strconv.FormatInt(id, 10) + "." + format.Extension()
}
