package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

var (
	flagJSON        bool
	flagProjectName string
	flagTopic       string
	flagDocType     string
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects"},
	Short:   "Manage document projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects",
	RunE:  runProjectList,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	Long: `Create a project. Every new project starts with the Introduction,
Main Content and Conclusion sections.

Example:
  aidoc project create --name "Q3 report" --topic "Solar adoption" --type pptx`,
	RunE: runProjectCreate,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show a project with its sections and comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

func init() {
	projectListCmd.Flags().BoolVar(&flagJSON, "json", false, "print JSON")
	projectShowCmd.Flags().BoolVar(&flagJSON, "json", false, "print JSON")

	projectCreateCmd.Flags().StringVar(&flagProjectName, "name", "", "project name (required)")
	projectCreateCmd.Flags().StringVar(&flagTopic, "topic", "", "main topic (required)")
	projectCreateCmd.Flags().StringVar(&flagDocType, "type", string(domain.FormatDOCX), "document type: docx or pptx")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectShowCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectList(cmd *cobra.Command, _ []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if projectService == nil {
		return errors.New("project service not configured")
	}

	projects, err := projectService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if flagJSON {
		return printJSON(cmd, projects)
	}

	if len(projects) == 0 {
		cmd.Println("No projects yet. Create one with 'aidoc project create'.")
		return nil
	}

	for i := range projects {
		cmd.Printf("%-6d %-30s %s\n", projects[i].ID, projects[i].Name, projects[i].Summary())
	}
	return nil
}

func runProjectCreate(cmd *cobra.Command, _ []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if projectService == nil {
		return errors.New("project service not configured")
	}

	format, err := domain.ParseDocumentFormat(flagDocType)
	if err != nil {
		return err
	}

	project, err := projectService.Create(context.Background(), domain.NewProject{
		Name:         flagProjectName,
		MainTopic:    flagTopic,
		DocumentType: format,
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	cmd.Printf("Created project %d: %s\n", project.ID, project.Name)
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if projectService == nil {
		return errors.New("project service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	project, err := projectService.Get(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to load project %d: %w", id, err)
	}
	project.Sections = domain.SortSections(project.Sections)

	if flagJSON {
		return printJSON(cmd, project)
	}

	cmd.Printf("%s (#%d)\n", project.Name, project.ID)
	cmd.Printf("%s\n", project.Summary())
	for i := range project.Sections {
		section := &project.Sections[i]
		cmd.Println()
		cmd.Printf("[%d] %s\n", section.ID, section.Title)
		if section.Content == "" {
			cmd.Println("  (empty)")
		} else {
			cmd.Printf("  %s\n", section.Content)
		}
		for _, c := range section.Comments {
			cmd.Printf("  - %s\n", c.Text)
		}
	}
	return nil
}

// parseID parses a positive numeric identifier.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, s)
	}
	return id, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
