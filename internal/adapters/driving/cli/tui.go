package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui"
)

var flagRoute string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for aidoc.

The TUI lists your projects, opens them section by section, and lets you
refine, comment on and export documents with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Open / Submit
  Tab      - Next field or section control
  Esc      - Back / Cancel
  ctrl+o   - Settings
  ctrl+l   - Logout
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagRoute, "route", "/", "initial route, e.g. /projects/12")
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the configured services.
func tuiPorts() *tui.Ports {
	ports := tui.NewPorts(sessionService, authService, projectService)
	ports.Sections = sectionService
	ports.Export = exportService
	ports.Refiner = textRefiner
	ports.Settings = settingsService
	return ports
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithStartPath(flagRoute).WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
