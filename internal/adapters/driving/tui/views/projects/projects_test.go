package projects

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// MockProjectService implements driving.ProjectService for testing.
type MockProjectService struct {
	ListFunc   func(ctx context.Context) ([]domain.Project, error)
	CreateFunc func(ctx context.Context, p domain.NewProject) (*domain.Project, error)
	created    []domain.NewProject
}

func (m *MockProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectService) Create(ctx context.Context, p domain.NewProject) (*domain.Project, error) {
	m.created = append(m.created, p)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return &domain.Project{ID: 99, Name: p.Name}, nil
}

func (m *MockProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return nil, domain.ErrNotFound
}

func sampleProjects() []domain.Project {
	return []domain.Project{
		{ID: 1, Name: "Energy", DocumentType: domain.FormatDOCX, MainTopic: "Solar"},
		{ID: 2, Name: "Pitch", DocumentType: domain.FormatPPTX, MainTopic: "Seed round"},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(v *View, list []domain.Project) {
	v.Update(messages.ProjectsLoaded{Projects: list})
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.Empty(t, v.Projects())
	assert.False(t, v.Creating())
}

func TestView_InitLoadsProjects(t *testing.T) {
	mock := &MockProjectService{
		ListFunc: func(ctx context.Context) ([]domain.Project, error) {
			return sampleProjects(), nil
		},
	}
	v := NewView(nil, mock)

	cmd := v.Init()

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ProjectsLoaded)
	require.True(t, ok)
	assert.Len(t, msg.Projects, 2)
	assert.Contains(t, v.View(), "Loading projects...")
}

func TestView_RendersProjects(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(120, 40)
	loaded(v, sampleProjects())

	view := v.View()

	assert.Contains(t, view, "Energy")
	assert.Contains(t, view, "DOCX · Solar")
	assert.Contains(t, view, "PPTX · Seed round")
}

func TestView_FetchFailureIsSilent(t *testing.T) {
	v := NewView(nil, nil)
	loaded(v, sampleProjects())

	v.Update(messages.ProjectsLoaded{Err: errors.New("connection refused")})

	assert.Empty(t, v.Projects())
	assert.Error(t, v.Err())
	view := v.View()
	assert.Contains(t, view, "No projects yet.")
	assert.NotContains(t, view, "connection refused")
}

func TestView_Navigation(t *testing.T) {
	v := NewView(nil, nil)
	loaded(v, sampleProjects())

	v.Update(key("j"))
	assert.Equal(t, 1, v.SelectedIndex())
	v.Update(key("j"))
	assert.Equal(t, 1, v.SelectedIndex())
	v.Update(key("k"))
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_EnterOpensProject(t *testing.T) {
	v := NewView(nil, nil)
	loaded(v, sampleProjects())
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.Navigate{Path: "/projects/2"}, cmd())
}

func TestView_EnterOnEmptyListDoesNothing(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_OpenRefineTool(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(key("t"))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.Navigate{Path: "/refine"}, cmd())
}

func fillCreateForm(v *View, name, topic string) {
	v.Update(key("n"))
	v.Update(key(name))
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v.Update(key(topic))
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
}

func TestView_CreateProject(t *testing.T) {
	mock := &MockProjectService{}
	v := NewView(nil, mock)
	fillCreateForm(v, "Deck", "Climate")
	v.Update(tea.KeyMsg{Type: tea.KeyRight})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, v.Submitting())
	assert.Contains(t, v.View(), "Creating...")

	msg, ok := cmd().(messages.ProjectCreated)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	require.Len(t, mock.created, 1)
	assert.Equal(t, domain.NewProject{Name: "Deck", DocumentType: domain.FormatPPTX, MainTopic: "Climate"}, mock.created[0])
}

func TestView_CreateDefaultsToDOCX(t *testing.T) {
	mock := &MockProjectService{}
	v := NewView(nil, mock)
	fillCreateForm(v, "Report", "Water")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, domain.FormatDOCX, mock.created[0].DocumentType)
}

func TestView_CreateRequiresNameAndTopic(t *testing.T) {
	mock := &MockProjectService{}
	v := NewView(nil, mock)
	fillCreateForm(v, "Only name", "  ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, v.Submitting())
	assert.Contains(t, v.View(), MsgRequired)
	assert.Empty(t, mock.created)
}

func TestView_CreatedClearsFormAndReloads(t *testing.T) {
	mock := &MockProjectService{
		ListFunc: func(ctx context.Context) ([]domain.Project, error) {
			return sampleProjects(), nil
		},
	}
	v := NewView(nil, mock)
	fillCreateForm(v, "Deck", "Climate")

	_, cmd := v.Update(messages.ProjectCreated{Project: &domain.Project{ID: 3}})

	require.NotNil(t, cmd)
	assert.False(t, v.Creating())
	assert.Equal(t, "", v.name.Value())
	assert.Equal(t, "", v.topic.Value())
	msg, ok := cmd().(messages.ProjectsLoaded)
	require.True(t, ok)
	assert.Len(t, msg.Projects, 2)
}

func TestView_CreateFailureKeepsForm(t *testing.T) {
	v := NewView(nil, &MockProjectService{})
	fillCreateForm(v, "Deck", "Climate")
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := v.Update(messages.ProjectCreated{Err: errors.New("500")})

	assert.Nil(t, cmd)
	assert.True(t, v.Creating())
	assert.False(t, v.Submitting())
	assert.Equal(t, "Deck", v.name.Value())
}

func TestView_FormEscCloses(t *testing.T) {
	v := NewView(nil, nil)
	v.Update(key("n"))
	require.True(t, v.Creating())

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.Creating())
}

func TestView_FormSwallowsLetterBindings(t *testing.T) {
	v := NewView(nil, nil)
	v.Update(key("n"))

	v.Update(key("t"))

	assert.Equal(t, "t", v.name.Value())
	assert.True(t, v.Creating())
}

func TestView_Reset(t *testing.T) {
	v := NewView(nil, nil)
	fillCreateForm(v, "Deck", "Climate")
	v.Update(tea.KeyMsg{Type: tea.KeyRight})

	v.Reset()

	assert.False(t, v.Creating())
	assert.Equal(t, domain.FormatDOCX, v.docType)
	assert.Equal(t, "", v.name.Value())
}
