// Package ooxml reads the text of DOCX and PPTX packages.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.DocumentInspector = (*Inspector)(nil)

// XML namespaces holding paragraph and text elements.
const (
	wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	drawingNS        = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

const (
	documentPart = "word/document.xml"
	corePart     = "docProps/core.xml"
	slidePrefix  = "ppt/slides/slide"
)

// maxPartSize bounds how much of one XML part is read.
const maxPartSize = 32 << 20

// Inspector extracts paragraphs from Office Open XML packages.
type Inspector struct{}

// New creates a new inspector.
func New() *Inspector {
	return &Inspector{}
}

// Inspect implements driven.DocumentInspector.
func (i *Inspector) Inspect(format domain.DocumentFormat, data []byte) (*domain.DocumentPreview, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not an OOXML package", domain.ErrInvalidInput)
	}

	preview := &domain.DocumentPreview{
		Format:     format,
		Title:      extractTitle(reader),
		Paragraphs: []string{},
	}

	switch format {
	case domain.FormatDOCX:
		part := findPart(reader, documentPart)
		if part == nil {
			return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, documentPart)
		}
		paragraphs, err := readParagraphs(part, wordprocessingNS)
		if err != nil {
			return nil, err
		}
		preview.Paragraphs = append(preview.Paragraphs, paragraphs...)
	case domain.FormatPPTX:
		slides := slideParts(reader)
		if len(slides) == 0 {
			return nil, fmt.Errorf("%w: no slides", domain.ErrInvalidInput)
		}
		for _, slide := range slides {
			paragraphs, err := readParagraphs(slide, drawingNS)
			if err != nil {
				return nil, err
			}
			preview.Paragraphs = append(preview.Paragraphs, paragraphs...)
		}
		preview.Slides = len(slides)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	return preview, nil
}

func findPart(reader *zip.Reader, name string) *zip.File {
	for _, file := range reader.File {
		if file.Name == name {
			return file
		}
	}
	return nil
}

// slideParts returns ppt/slides/slideN.xml ordered by N.
func slideParts(reader *zip.Reader) []*zip.File {
	type numbered struct {
		n    int
		file *zip.File
	}

	var slides []numbered
	for _, file := range reader.File {
		rest, ok := strings.CutPrefix(file.Name, slidePrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(rest, ".xml"))
		if err != nil || !strings.HasSuffix(rest, ".xml") {
			continue
		}
		slides = append(slides, numbered{n: n, file: file})
	}
	sort.Slice(slides, func(a, b int) bool { return slides[a].n < slides[b].n })

	files := make([]*zip.File, len(slides))
	for i := range slides {
		files[i] = slides[i].file
	}
	return files
}

// readParagraphs streams a part and collects the text of every <p> in ns.
// Paragraphs nested in tables or shapes are included in document order.
func readParagraphs(file *zip.File, ns string) ([]string, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, file.Name, err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(io.LimitReader(rc, maxPartSize))

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, file.Name, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Space != ns {
				continue
			}
			switch el.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "t":
				inText = depth > 0
			case "tab":
				if depth > 0 {
					current.WriteByte('\t')
				}
			}
		case xml.EndElement:
			if el.Name.Space != ns {
				continue
			}
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}
	return paragraphs, nil
}

// coreXML represents the part of docProps/core.xml that is read.
type coreXML struct {
	Title string `xml:"title"`
}

// extractTitle reads dc:title from the core properties, or returns "".
func extractTitle(reader *zip.Reader) string {
	part := findPart(reader, corePart)
	if part == nil {
		return ""
	}

	rc, err := part.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	var core coreXML
	if err := xml.NewDecoder(io.LimitReader(rc, maxPartSize)).Decode(&core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}
