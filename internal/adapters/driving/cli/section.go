package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

var (
	flagPrompt    string
	flagProjectID int64
	flagLike      bool
	flagDislike   bool
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Refine, rate and comment on sections",
}

var sectionRefineCmd = &cobra.Command{
	Use:   "refine <section-id>",
	Short: "Rewrite a section with AI",
	Long: `Ask the backend to rewrite a section following a prompt.

Pass --project to print the refreshed section afterwards.

Example:
  aidoc section refine 71 --prompt "make it shorter" --project 7`,
	Args: cobra.ExactArgs(1),
	RunE: runSectionRefine,
}

var sectionFeedbackCmd = &cobra.Command{
	Use:   "feedback <section-id>",
	Short: "Like or dislike a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionFeedback,
}

var sectionCommentCmd = &cobra.Command{
	Use:   "comment <section-id> <text>",
	Short: "Add a comment to a section",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSectionComment,
}

func init() {
	sectionRefineCmd.Flags().StringVar(&flagPrompt, "prompt", "", "refinement instruction (required)")
	sectionRefineCmd.Flags().Int64Var(&flagProjectID, "project", 0, "project to re-fetch after refining")
	sectionCommentCmd.Flags().Int64Var(&flagProjectID, "project", 0, "project to re-fetch after commenting")

	sectionFeedbackCmd.Flags().BoolVar(&flagLike, "like", false, "record a like")
	sectionFeedbackCmd.Flags().BoolVar(&flagDislike, "dislike", false, "record a dislike")
	sectionFeedbackCmd.MarkFlagsMutuallyExclusive("like", "dislike")
	sectionFeedbackCmd.MarkFlagsOneRequired("like", "dislike")

	sectionCmd.AddCommand(sectionRefineCmd)
	sectionCmd.AddCommand(sectionFeedbackCmd)
	sectionCmd.AddCommand(sectionCommentCmd)
	rootCmd.AddCommand(sectionCmd)
}

func runSectionRefine(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if sectionService == nil {
		return errors.New("section service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := sectionService.Refine(context.Background(), id, flagPrompt); err != nil {
		return fmt.Errorf("failed to refine section %d: %w", id, err)
	}

	cmd.Printf("Section %d refined.\n", id)
	return printRefreshed(cmd, id)
}

func runSectionFeedback(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if sectionService == nil {
		return errors.New("section service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := sectionService.Feedback(context.Background(), id, flagLike); err != nil {
		return fmt.Errorf("failed to send feedback for section %d: %w", id, err)
	}

	cmd.Println("Feedback recorded.")
	return nil
}

func runSectionComment(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if sectionService == nil {
		return errors.New("section service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	if err := sectionService.AddComment(context.Background(), id, text); err != nil {
		return fmt.Errorf("failed to add comment to section %d: %w", id, err)
	}

	cmd.Println("Comment added.")
	return printRefreshed(cmd, id)
}

// printRefreshed re-fetches the --project project and prints the section.
// A failed re-fetch is reported but does not fail the command.
func printRefreshed(cmd *cobra.Command, sectionID int64) error {
	if flagProjectID == 0 || projectService == nil {
		return nil
	}

	project, err := projectService.Get(context.Background(), flagProjectID)
	if err != nil {
		cmd.PrintErrf("Could not reload project %d: %v\n", flagProjectID, err)
		return nil
	}

	section, ok := project.Section(sectionID)
	if !ok {
		return fmt.Errorf("%w: section %d in project %d", domain.ErrNotFound, sectionID, flagProjectID)
	}

	cmd.Println()
	cmd.Printf("[%d] %s\n", section.ID, section.Title)
	cmd.Printf("  %s\n", section.Content)
	for _, c := range section.Comments {
		cmd.Printf("  - %s\n", c.Text)
	}
	return nil
}
