package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and store the session",
	Long: `Sign in with your email and password. The access token is stored
locally and used by every other command until 'aidoc logout'.

The password is read without echo when stdin is a terminal.

Examples:
  aidoc login
  aidoc login ada@example.com
  echo "$PASSWORD" | aidoc login ada@example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create an account",
	Long: `Create an account on the backend. Registration does not sign you in;
run 'aidoc login' afterwards.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the backend address and session state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	email, password, err := readCredentials(cmd, args)
	if err != nil {
		return err
	}

	if err := authService.Login(context.Background(), email, password); err != nil {
		if errors.Is(err, domain.ErrMissingToken) {
			return fmt.Errorf("invalid token received: %w", err)
		}
		return fmt.Errorf("login failed, check your email/password: %w", err)
	}

	cmd.Printf("Logged in as %s\n", email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	email, password, err := readCredentials(cmd, args)
	if err != nil {
		return err
	}

	if err := authService.Register(context.Background(), email, password); err != nil {
		return fmt.Errorf("registration failed, try a different email or check the backend: %w", err)
	}

	cmd.Println("Account created. Run 'aidoc login' to sign in.")
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if err := authService.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cmd.Println("Logged out.")
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		cmd.Printf("Server:  %s\n", settings.Server.URL)
		cmd.Printf("Config:  %s\n", settingsService.Path())
	}

	if sessionService != nil && sessionService.IsAuthenticated() {
		cmd.Println("Session: logged in")
	} else {
		cmd.Println("Session: not logged in")
	}
	return nil
}

// readCredentials takes the email from args or prompts for it, then reads
// the password. Both must be non-blank.
func readCredentials(cmd *cobra.Command, args []string) (string, string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	email := ""
	if len(args) > 0 {
		email = strings.TrimSpace(args[0])
	} else {
		cmd.Print("Email: ")
		email = readLine(reader)
	}

	cmd.Print("Password: ")
	password := readPassword(cmd, reader)
	cmd.Println()

	if email == "" || password == "" {
		return "", "", errors.New("email and password are required")
	}
	return email, password, nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads without echo when stdin is the terminal, otherwise
// it takes the next line.
func readPassword(cmd *cobra.Command, reader *bufio.Reader) string {
	if in, ok := cmd.InOrStdin().(*os.File); ok && in == os.Stdin && term.IsTerminal(int(in.Fd())) {
		password, err := term.ReadPassword(int(in.Fd()))
		if err == nil {
			return string(password)
		}
	}
	return readLine(reader)
}

// readStdin reads all of the command's input.
func readStdin(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	return string(data), err
}
