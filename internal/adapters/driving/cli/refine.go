package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagText        string
	flagInstruction string
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Rewrite freeform text with AI",
	Long: `Rewrite a piece of text following an instruction. The text is read
from --text, or from stdin when --text is "-" or omitted.

Examples:
  aidoc refine --text "teh report is done" --instruction "fix typos"
  cat draft.txt | aidoc refine --instruction "make it formal"`,
	RunE: runRefine,
}

func init() {
	refineCmd.Flags().StringVar(&flagText, "text", "-", "text to refine, or - for stdin")
	refineCmd.Flags().StringVar(&flagInstruction, "instruction", "", "how to rewrite the text")
	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, _ []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	if textRefiner == nil {
		return errors.New("refine service not configured")
	}

	text := flagText
	if text == "-" {
		input, err := readStdin(cmd)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = input
	}
	text = strings.TrimSpace(text)

	refined, err := textRefiner.RefineText(context.Background(), text, flagInstruction)
	if err != nil {
		return fmt.Errorf("failed to refine text: %w", err)
	}

	cmd.Println(refined)
	return nil
}
