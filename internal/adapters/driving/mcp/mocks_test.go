package mcp

import (
	"context"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// mockProjectService is a mock implementation of driving.ProjectService.
type mockProjectService struct {
	projects []domain.Project
	project  *domain.Project
	created  []domain.NewProject
	getCalls int
	err      error
}

func (m *mockProjectService) List(_ context.Context) ([]domain.Project, error) {
	return m.projects, m.err
}

func (m *mockProjectService) Create(_ context.Context, p domain.NewProject) (*domain.Project, error) {
	m.created = append(m.created, p)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Project{ID: 42, Name: p.Name, DocumentType: p.DocumentType, MainTopic: p.MainTopic}, nil
}

func (m *mockProjectService) Get(_ context.Context, _ int64) (*domain.Project, error) {
	m.getCalls++
	return m.project, m.err
}

// mockSectionService is a mock implementation of driving.SectionService.
type mockSectionService struct {
	refined  map[int64]string
	feedback map[int64]bool
	comments map[int64]string
	err      error
}

func newMockSectionService() *mockSectionService {
	return &mockSectionService{
		refined:  make(map[int64]string),
		feedback: make(map[int64]bool),
		comments: make(map[int64]string),
	}
}

func (m *mockSectionService) Refine(_ context.Context, sectionID int64, prompt string) error {
	m.refined[sectionID] = prompt
	return m.err
}

func (m *mockSectionService) Feedback(_ context.Context, sectionID int64, isLike bool) error {
	m.feedback[sectionID] = isLike
	return m.err
}

func (m *mockSectionService) AddComment(_ context.Context, sectionID int64, text string) error {
	m.comments[sectionID] = text
	return m.err
}

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	path    string
	preview *domain.DocumentPreview
	project *domain.Project
	format  domain.DocumentFormat
	err     error
}

func (m *mockExportService) Export(_ context.Context, _ int64, _ domain.DocumentFormat) ([]byte, error) {
	return []byte("PK"), m.err
}

func (m *mockExportService) Download(
	_ context.Context,
	project *domain.Project,
	format domain.DocumentFormat,
) (string, error) {
	m.project = project
	m.format = format
	return m.path, m.err
}

func (m *mockExportService) Preview(
	_ context.Context,
	_ int64,
	format domain.DocumentFormat,
) (*domain.DocumentPreview, error) {
	m.format = format
	if m.err != nil {
		return nil, m.err
	}
	return m.preview, nil
}

// mockRefiner is a mock implementation of driving.TextRefiner.
type mockRefiner struct {
	out string
	err error
}

func (m *mockRefiner) RefineText(_ context.Context, _, _ string) (string, error) {
	return m.out, m.err
}

// mockSession is a mock implementation of driving.SessionService.
type mockSession struct {
	token string
}

func (m *mockSession) Current() (string, bool) { return m.token, m.token != "" }
func (m *mockSession) IsAuthenticated() bool   { return m.token != "" }
func (m *mockSession) Set(token string) error  { m.token = token; return nil }
func (m *mockSession) Clear() error            { m.token = ""; return nil }

func sampleProject() *domain.Project {
	return &domain.Project{
		ID:           7,
		Name:         "Energy",
		DocumentType: domain.FormatDOCX,
		MainTopic:    "Solar",
		Sections: []domain.Section{
			{ID: 72, OrderIndex: 2, Title: "Conclusion", Content: "End."},
			{ID: 70, OrderIndex: 0, Title: "Introduction", Content: "Start.",
				Comments: []domain.Comment{{ID: 1, Text: "tighten"}}},
			{ID: 71, OrderIndex: 1, Title: "Main Content"},
		},
	}
}
