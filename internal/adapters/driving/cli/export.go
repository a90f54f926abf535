package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export <docx|pptx> <project-id>",
	Short: "Download a project as DOCX or PPTX",
	Long: `Download a project and save it as <name>-<id>.<ext> in the export directory.

With --preview the document text is printed instead and nothing is saved.

Examples:
  aidoc export docx 7
  aidoc export pptx 7 --preview`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(domain.FormatDOCX), string(domain.FormatPPTX)},
	RunE:      runExport,
}

var flagPreview bool

func init() {
	exportCmd.Flags().BoolVar(&flagPreview, "preview", false, "print the document text instead of saving it")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if projectService == nil || exportService == nil {
		return errors.New("export service not configured")
	}

	format, err := domain.ParseDocumentFormat(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	ctx := context.Background()
	if flagPreview {
		return runExportPreview(cmd, id, format)
	}

	project, err := projectService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load project %d: %w", id, err)
	}

	path, err := exportService.Download(ctx, project, format)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", format.Label(), err)
	}

	cmd.Printf("Saved %s\n", path)
	return nil
}

func runExportPreview(cmd *cobra.Command, id int64, format domain.DocumentFormat) error {
	preview, err := exportService.Preview(context.Background(), id, format)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", format.Label(), err)
	}

	if preview.Title != "" {
		cmd.Printf("%s\n\n", preview.Title)
	}
	for _, para := range preview.Paragraphs {
		cmd.Println(para)
	}
	cmd.Println()
	if preview.Slides > 0 {
		cmd.Printf("%d slides, %d words\n", preview.Slides, preview.Words())
	} else {
		cmd.Printf("%d words\n", preview.Words())
	}
	return nil
}
