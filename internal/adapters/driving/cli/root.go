// Package cli provides the cobra command tree for aidoc.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// errNotLoggedIn is returned by commands that need a session when none is stored.
var errNotLoggedIn = errors.New("not logged in (run 'aidoc login')")

// Services holds the driving ports the commands use.
type Services struct {
	Session  driving.SessionService
	Auth     driving.AuthService
	Projects driving.ProjectService
	Sections driving.SectionService
	Export   driving.ExportService
	Refiner  driving.TextRefiner
	Settings driving.SettingsService
}

// Options carries the global flags to the bootstrap function.
type Options struct {
	ConfigDir string
	ServerURL string
	Verbose   bool
	// Interactive is true when the command takes over the terminal.
	Interactive bool
}

// BootstrapFunc builds the services once the global flags are parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	bootstrap BootstrapFunc
	cleanup   func()

	sessionService  driving.SessionService
	authService     driving.AuthService
	projectService  driving.ProjectService
	sectionService  driving.SectionService
	exportService   driving.ExportService
	textRefiner     driving.TextRefiner
	settingsService driving.SettingsService
)

// Global flags.
var (
	flagConfigDir string
	flagServer    string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "aidoc",
	Short: "Terminal client for the AI document platform",
	Long: `aidoc creates document projects, refines their sections with AI
and exports them as DOCX or PPTX.

Run 'aidoc tui' for the interactive interface or use the subcommands
for scripting. Sign in first with 'aidoc login'.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.aidoc)")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "backend URL for this invocation")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// SetBootstrap registers the function that wires services from the global flags.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing the bootstrap function.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	sessionService = s.Session
	authService = s.Auth
	projectService = s.Projects
	sectionService = s.Sections
	exportService = s.Export
	textRefiner = s.Refiner
	settingsService = s.Settings
}

// SetCleanup registers a function run after the command finishes.
func SetCleanup(fn func()) {
	cleanup = fn
}

// SetVersion sets the version reported by 'aidoc version'.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if cleanup != nil {
			cleanup()
		}
	}()
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(Options{
		ConfigDir:   flagConfigDir,
		ServerURL:   flagServer,
		Verbose:     flagVerbose,
		Interactive: cmd.Name() == "tui",
	})
	if err != nil {
		return fmt.Errorf("starting aidoc: %w", err)
	}
	SetServices(services)
	return nil
}

// requireSession fails when no token is stored.
func requireSession() error {
	if sessionService == nil || !sessionService.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}
