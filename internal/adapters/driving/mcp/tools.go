package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// ProjectSummary is a project without its sections.
type ProjectSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DocumentType string `json:"document_type"`
	MainTopic    string `json:"main_topic"`
}

// SectionOutput is a section with its comments.
type SectionOutput struct {
	ID         int64    `json:"id"`
	OrderIndex int      `json:"order_index"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Comments   []string `json:"comments,omitempty"`
}

// ProjectOutput is a project with sections in display order.
type ProjectOutput struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	DocumentType string          `json:"document_type"`
	MainTopic    string          `json:"main_topic"`
	Sections     []SectionOutput `json:"sections"`
}

// ListProjectsInput is the input schema for the list_projects tool.
type ListProjectsInput struct{}

// ListProjectsOutput is the output schema for the list_projects tool.
type ListProjectsOutput struct {
	Projects []ProjectSummary `json:"projects"`
	Count    int              `json:"count"`
}

// GetProjectInput is the input schema for the get_project tool.
type GetProjectInput struct {
	ProjectID int64 `json:"project_id" jsonschema:"the project to fetch"`
}

// CreateProjectInput is the input schema for the create_project tool.
type CreateProjectInput struct {
	Name         string `json:"name" jsonschema:"project name"`
	MainTopic    string `json:"main_topic" jsonschema:"what the document is about"`
	DocumentType string `json:"document_type,omitempty" jsonschema:"docx or pptx (default docx)"`
}

// RefineSectionInput is the input schema for the refine_section tool.
type RefineSectionInput struct {
	SectionID int64  `json:"section_id" jsonschema:"the section to rewrite"`
	Prompt    string `json:"prompt" jsonschema:"how the section should change"`
	ProjectID int64  `json:"project_id,omitempty" jsonschema:"owning project; when set the refreshed section is returned"`
}

// SectionResultOutput reports a section mutation. Section is set when the
// owning project was re-fetched.
type SectionResultOutput struct {
	SectionID int64          `json:"section_id"`
	Section   *SectionOutput `json:"section,omitempty"`
}

// SendFeedbackInput is the input schema for the send_feedback tool.
type SendFeedbackInput struct {
	SectionID int64 `json:"section_id" jsonschema:"the section being rated"`
	IsLike    bool  `json:"is_like" jsonschema:"true for like, false for dislike"`
}

// AddCommentInput is the input schema for the add_comment tool.
type AddCommentInput struct {
	SectionID int64  `json:"section_id" jsonschema:"the section to comment on"`
	Text      string `json:"text" jsonschema:"comment text"`
	ProjectID int64  `json:"project_id,omitempty" jsonschema:"owning project; when set the refreshed section is returned"`
}

// ExportProjectInput is the input schema for the export_project tool.
type ExportProjectInput struct {
	ProjectID int64  `json:"project_id" jsonschema:"the project to export"`
	Format    string `json:"format" jsonschema:"docx or pptx"`
}

// ExportProjectOutput is the output schema for the export_project tool.
type ExportProjectOutput struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

// PreviewExportOutput is the output schema for the preview_export tool.
type PreviewExportOutput struct {
	Title  string `json:"title,omitempty"`
	Text   string `json:"text"`
	Words  int    `json:"words"`
	Slides int    `json:"slides,omitempty"`
}

// RefineTextInput is the input schema for the refine_text tool.
type RefineTextInput struct {
	Text        string `json:"text" jsonschema:"content to rewrite"`
	Instruction string `json:"instruction" jsonschema:"how to rewrite it"`
}

// RefineTextOutput is the output schema for the refine_text tool.
type RefineTextOutput struct {
	RefinedText string `json:"refined_text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List the document projects of the signed-in user",
	}, s.handleListProjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project",
		Description: "Fetch a project with its sections and comments in order",
	}, s.handleGetProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a project seeded with Introduction, Main Content and Conclusion sections",
	}, s.handleCreateProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refine_section",
		Description: "Ask the AI backend to rewrite one section following a prompt",
	}, s.handleRefineSection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "send_feedback",
		Description: "Like or dislike a section",
	}, s.handleSendFeedback)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_comment",
		Description: "Attach a comment to a section",
	}, s.handleAddComment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_project",
		Description: "Export a project as DOCX or PPTX into the download directory",
	}, s.handleExportProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_export",
		Description: "Export a project and return the document text without saving it",
	}, s.handlePreviewExport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refine_text",
		Description: "Rewrite freeform text following an instruction",
	}, s.handleRefineText)
}

func (s *Server) handleListProjects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListProjectsInput,
) (*mcp.CallToolResult, ListProjectsOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, ListProjectsOutput{}, err
	}

	projects, err := s.ports.Projects.List(ctx)
	if err != nil {
		return nil, ListProjectsOutput{}, fmt.Errorf("listing projects: %w", err)
	}

	output := ListProjectsOutput{
		Projects: make([]ProjectSummary, len(projects)),
		Count:    len(projects),
	}
	for i := range projects {
		output.Projects[i] = summarise(&projects[i])
	}
	return nil, output, nil
}

func (s *Server) handleGetProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetProjectInput,
) (*mcp.CallToolResult, ProjectOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, ProjectOutput{}, err
	}

	project, err := s.ports.Projects.Get(ctx, input.ProjectID)
	if err != nil {
		return nil, ProjectOutput{}, fmt.Errorf("getting project %d: %w", input.ProjectID, err)
	}
	return nil, convertProject(project), nil
}

func (s *Server) handleCreateProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateProjectInput,
) (*mcp.CallToolResult, ProjectSummary, error) {
	if err := s.authorised(); err != nil {
		return nil, ProjectSummary{}, err
	}

	format := domain.FormatDOCX
	if input.DocumentType != "" {
		var err error
		if format, err = domain.ParseDocumentFormat(input.DocumentType); err != nil {
			return nil, ProjectSummary{}, err
		}
	}

	project, err := s.ports.Projects.Create(ctx, domain.NewProject{
		Name:         input.Name,
		DocumentType: format,
		MainTopic:    input.MainTopic,
	})
	if err != nil {
		return nil, ProjectSummary{}, fmt.Errorf("creating project: %w", err)
	}
	return nil, summarise(project), nil
}

func (s *Server) handleRefineSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RefineSectionInput,
) (*mcp.CallToolResult, SectionResultOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, SectionResultOutput{}, err
	}
	if s.ports.Sections == nil {
		return nil, SectionResultOutput{}, domain.ErrNotImplemented
	}

	if err := s.ports.Sections.Refine(ctx, input.SectionID, input.Prompt); err != nil {
		return nil, SectionResultOutput{}, fmt.Errorf("refining section %d: %w", input.SectionID, err)
	}
	return s.sectionResult(ctx, input.ProjectID, input.SectionID)
}

func (s *Server) handleSendFeedback(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendFeedbackInput,
) (*mcp.CallToolResult, SectionResultOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, SectionResultOutput{}, err
	}
	if s.ports.Sections == nil {
		return nil, SectionResultOutput{}, domain.ErrNotImplemented
	}

	if err := s.ports.Sections.Feedback(ctx, input.SectionID, input.IsLike); err != nil {
		return nil, SectionResultOutput{}, fmt.Errorf("sending feedback for section %d: %w", input.SectionID, err)
	}
	return nil, SectionResultOutput{SectionID: input.SectionID}, nil
}

func (s *Server) handleAddComment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddCommentInput,
) (*mcp.CallToolResult, SectionResultOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, SectionResultOutput{}, err
	}
	if s.ports.Sections == nil {
		return nil, SectionResultOutput{}, domain.ErrNotImplemented
	}

	if err := s.ports.Sections.AddComment(ctx, input.SectionID, input.Text); err != nil {
		return nil, SectionResultOutput{}, fmt.Errorf("adding comment to section %d: %w", input.SectionID, err)
	}
	return s.sectionResult(ctx, input.ProjectID, input.SectionID)
}

// sectionResult re-fetches the owning project when known so the caller
// sees the section as the backend now stores it.
func (s *Server) sectionResult(
	ctx context.Context,
	projectID, sectionID int64,
) (*mcp.CallToolResult, SectionResultOutput, error) {
	output := SectionResultOutput{SectionID: sectionID}
	if projectID <= 0 {
		return nil, output, nil
	}

	project, err := s.ports.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, SectionResultOutput{}, fmt.Errorf("re-fetching project %d: %w", projectID, err)
	}
	if sec, ok := project.Section(sectionID); ok {
		converted := convertSection(sec)
		output.Section = &converted
	}
	return nil, output, nil
}

func (s *Server) handleExportProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportProjectInput,
) (*mcp.CallToolResult, ExportProjectOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, ExportProjectOutput{}, err
	}
	if s.ports.Export == nil {
		return nil, ExportProjectOutput{}, domain.ErrNotImplemented
	}

	format, err := domain.ParseDocumentFormat(input.Format)
	if err != nil {
		return nil, ExportProjectOutput{}, err
	}

	// The project name is part of the filename.
	project, err := s.ports.Projects.Get(ctx, input.ProjectID)
	if err != nil {
		return nil, ExportProjectOutput{}, fmt.Errorf("getting project %d: %w", input.ProjectID, err)
	}

	path, err := s.ports.Export.Download(ctx, project, format)
	if err != nil {
		return nil, ExportProjectOutput{}, fmt.Errorf("failed to export %s: %w", format.Label(), err)
	}
	return nil, ExportProjectOutput{Path: path, Format: format.String()}, nil
}

func (s *Server) handlePreviewExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportProjectInput,
) (*mcp.CallToolResult, PreviewExportOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, PreviewExportOutput{}, err
	}
	if s.ports.Export == nil {
		return nil, PreviewExportOutput{}, domain.ErrNotImplemented
	}

	format, err := domain.ParseDocumentFormat(input.Format)
	if err != nil {
		return nil, PreviewExportOutput{}, err
	}

	preview, err := s.ports.Export.Preview(ctx, input.ProjectID, format)
	if err != nil {
		return nil, PreviewExportOutput{}, fmt.Errorf("failed to export %s: %w", format.Label(), err)
	}
	return nil, PreviewExportOutput{
		Title:  preview.Title,
		Text:   preview.Text(),
		Words:  preview.Words(),
		Slides: preview.Slides,
	}, nil
}

func (s *Server) handleRefineText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RefineTextInput,
) (*mcp.CallToolResult, RefineTextOutput, error) {
	if err := s.authorised(); err != nil {
		return nil, RefineTextOutput{}, err
	}
	if s.ports.Refiner == nil {
		return nil, RefineTextOutput{}, domain.ErrNotImplemented
	}

	text, err := s.ports.Refiner.RefineText(ctx, input.Text, input.Instruction)
	if err != nil {
		return nil, RefineTextOutput{}, fmt.Errorf("refining text: %w", err)
	}
	return nil, RefineTextOutput{RefinedText: text}, nil
}

func summarise(p *domain.Project) ProjectSummary {
	return ProjectSummary{
		ID:           p.ID,
		Name:         p.Name,
		DocumentType: p.DocumentType.String(),
		MainTopic:    p.MainTopic,
	}
}

func convertSection(sec *domain.Section) SectionOutput {
	out := SectionOutput{
		ID:         sec.ID,
		OrderIndex: sec.OrderIndex,
		Title:      sec.Title,
		Content:    sec.Content,
	}
	for _, c := range sec.Comments {
		out.Comments = append(out.Comments, c.Text)
	}
	return out
}

func convertProject(p *domain.Project) ProjectOutput {
	sorted := domain.SortSections(p.Sections)
	out := ProjectOutput{
		ID:           p.ID,
		Name:         p.Name,
		DocumentType: p.DocumentType.String(),
		MainTopic:    p.MainTopic,
		Sections:     make([]SectionOutput, len(sorted)),
	}
	for i := range sorted {
		out.Sections[i] = convertSection(&sorted[i])
	}
	return out
}
