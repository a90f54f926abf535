package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/services"
)

// mockAuthService stores "token-<email>" on login like the real service.
type mockAuthService struct {
	session     *services.SessionService
	loginErr    error
	registerErr error
	email       string
	password    string
}

func (m *mockAuthService) Login(_ context.Context, email, password string) error {
	m.email, m.password = email, password
	if m.loginErr != nil {
		return m.loginErr
	}
	return m.session.Set("token-" + email)
}

func (m *mockAuthService) Register(_ context.Context, email, password string) error {
	m.email, m.password = email, password
	return m.registerErr
}

func (m *mockAuthService) Logout() error {
	return m.session.Clear()
}

type mockProjectService struct {
	projects []domain.Project
	project  *domain.Project
	created  []domain.NewProject
	err      error
	getErr   error
}

func (m *mockProjectService) List(context.Context) ([]domain.Project, error) {
	return m.projects, m.err
}

func (m *mockProjectService) Create(_ context.Context, p domain.NewProject) (*domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m.created = append(m.created, p)
	return &domain.Project{ID: 42, Name: p.Name, DocumentType: p.DocumentType, MainTopic: p.MainTopic}, nil
}

func (m *mockProjectService) Get(_ context.Context, id int64) (*domain.Project, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.project == nil || m.project.ID != id {
		return nil, domain.ErrNotFound
	}
	return m.project, nil
}

type mockSectionService struct {
	refined  map[int64]string
	feedback map[int64]bool
	comments map[int64]string
	err      error
}

func newMockSectionService() *mockSectionService {
	return &mockSectionService{
		refined:  map[int64]string{},
		feedback: map[int64]bool{},
		comments: map[int64]string{},
	}
}

func (m *mockSectionService) Refine(_ context.Context, id int64, prompt string) error {
	if m.err != nil {
		return m.err
	}
	m.refined[id] = prompt
	return nil
}

func (m *mockSectionService) Feedback(_ context.Context, id int64, isLike bool) error {
	if m.err != nil {
		return m.err
	}
	m.feedback[id] = isLike
	return nil
}

func (m *mockSectionService) AddComment(_ context.Context, id int64, text string) error {
	if m.err != nil {
		return m.err
	}
	m.comments[id] = text
	return nil
}

type mockExportService struct {
	path      string
	err       error
	format    domain.DocumentFormat
	project   *domain.Project
	preview   *domain.DocumentPreview
	previewID int64
}

func (m *mockExportService) Export(context.Context, int64, domain.DocumentFormat) ([]byte, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockExportService) Download(_ context.Context, p *domain.Project, f domain.DocumentFormat) (string, error) {
	m.project, m.format = p, f
	return m.path, m.err
}

func (m *mockExportService) Preview(_ context.Context, id int64, f domain.DocumentFormat) (*domain.DocumentPreview, error) {
	m.previewID, m.format = id, f
	if m.err != nil {
		return nil, m.err
	}
	return m.preview, nil
}

type mockRefiner struct {
	out         string
	err         error
	text        string
	instruction string
}

func (m *mockRefiner) RefineText(_ context.Context, text, instruction string) (string, error) {
	m.text, m.instruction = text, instruction
	return m.out, m.err
}

func sampleProject() *domain.Project {
	return &domain.Project{
		ID:           7,
		Name:         "Energy",
		DocumentType: domain.FormatDOCX,
		MainTopic:    "Solar",
		Sections: []domain.Section{
			{ID: 72, OrderIndex: 2, Title: "Conclusion", Content: "Wrap up."},
			{ID: 70, OrderIndex: 0, Title: "Introduction", Content: "Hello.",
				Comments: []domain.Comment{{ID: 1, Text: "tighten"}}},
			{ID: 71, OrderIndex: 1, Title: "Main Content"},
		},
	}
}

// testServices is the set of fakes installed by setupTestServices.
type testServices struct {
	session  *services.SessionService
	auth     *mockAuthService
	projects *mockProjectService
	sections *mockSectionService
	export   *mockExportService
	refiner  *mockRefiner
	settings *services.SettingsService
}

// setupTestServices installs fakes with the given stored token ("" for none)
// and restores the package state when the test ends.
func setupTestServices(t *testing.T, token string) *testServices {
	t.Helper()

	store := memory.NewSessionStore()
	if token != "" {
		store = memory.NewSessionStoreWithToken(token)
	}
	session := services.NewSessionService(store)

	ts := &testServices{
		session:  session,
		auth:     &mockAuthService{session: session},
		projects: &mockProjectService{project: sampleProject()},
		sections: newMockSectionService(),
		export:   &mockExportService{},
		refiner:  &mockRefiner{},
		settings: services.NewSettingsService(memory.NewConfigStore()),
	}
	SetServices(&Services{
		Session:  ts.session,
		Auth:     ts.auth,
		Projects: ts.projects,
		Sections: ts.sections,
		Export:   ts.export,
		Refiner:  ts.refiner,
		Settings: ts.settings,
	})

	t.Cleanup(func() {
		SetServices(nil)
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return ts
}

// resetFlags restores every flag in the tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue) //nolint:errcheck // defaults always parse
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and stdin, returning combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
