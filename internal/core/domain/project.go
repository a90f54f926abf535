package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Project is a user-owned document composed of ordered sections.
type Project struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	DocumentType DocumentFormat `json:"document_type"`
	MainTopic    string         `json:"main_topic"`
	Sections     []Section      `json:"sections"`
}

// Section is a titled block of text within a project.
// Content is empty until something has been written into it.
type Section struct {
	ID         int64     `json:"id"`
	OrderIndex int       `json:"order_index"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Comments   []Comment `json:"comments"`
}

// Comment is a note left on a section.
type Comment struct {
	ID        int64  `json:"id"`
	SectionID int64  `json:"section_id,omitempty"`
	Text      string `json:"text"`
}

// SectionDraft is a section as submitted on project creation.
type SectionDraft struct {
	OrderIndex int    `json:"order_index"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// NewProject is the payload for creating a project.
type NewProject struct {
	Name         string         `json:"name"`
	DocumentType DocumentFormat `json:"document_type"`
	MainTopic    string         `json:"main_topic"`
	Sections     []SectionDraft `json:"sections"`
}

// Validate checks the user-supplied fields. Sections are not validated
// because callers always replace them with DefaultSections.
func (p NewProject) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.MainTopic) == "" {
		return fmt.Errorf("%w: main topic is required", ErrInvalidInput)
	}
	if !p.DocumentType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, p.DocumentType)
	}
	return nil
}

// Default skeleton seeded into every new project.
const (
	IntroductionTitle = "Introduction"
	MainContentTitle  = "Main Content"
	ConclusionTitle   = "Conclusion"
)

// DefaultSections returns the three-section skeleton every new project starts with.
// A fresh slice is returned on each call.
func DefaultSections() []SectionDraft {
	return []SectionDraft{
		{
			OrderIndex: 0,
			Title:      IntroductionTitle,
			Content:    "This is the introduction section of your document.",
		},
		{
			OrderIndex: 1,
			Title:      MainContentTitle,
			Content:    "This section contains the main explanation about your chosen topic.",
		},
		{
			OrderIndex: 2,
			Title:      ConclusionTitle,
			Content:    "This section summarizes the most important points.",
		},
	}
}

// SortSections returns a copy of sections ordered by OrderIndex ascending.
// Sections with equal OrderIndex keep their relative order.
func SortSections(sections []Section) []Section {
	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}

// Section looks up a section by ID.
func (p *Project) Section(id int64) (*Section, bool) {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i], true
		}
	}
	return nil, false
}

// Summary renders the one-line description shown on project cards,
// e.g. "DOCX · Climate policy".
func (p *Project) Summary() string {
	return fmt.Sprintf("%s · %s", p.DocumentType.Label(), p.MainTopic)
}
