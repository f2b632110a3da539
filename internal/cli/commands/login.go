package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/r3fitness/fitctl/internal/cli/client"
	"github.com/r3fitness/fitctl/internal/cli/fielderrs"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, serverAlias string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a fitness server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, email, password, serverAlias)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set FITCTL_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set FITCTL_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func runLogin(cmd *cobra.Command, email, password, serverAlias string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("FITCTL_EMAIL")
	}
	if password == "" {
		password = os.Getenv("FITCTL_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or FITCTL_EMAIL env var)")
	}

	app, err := newApp(serverAlias)
	if err != nil {
		return err
	}

	if err := app.requirePublic(cmd.Context()); err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or FITCTL_PASSWORD env var)")
		}
	}

	fmt.Printf("Logging in to %s (%s)...\n", app.server.Alias, app.server.URL)

	user, err := app.session.Login(cmd.Context(), email, password)
	if err != nil {
		printAPIErrors(err)
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", user.Name, user.Email)
	if user.Role == client.RoleAdmin {
		fmt.Println("  Role: Admin")
	}
	if user.Role == client.RolePersonal {
		fmt.Println("  Role: Personal trainer")
	}

	return nil
}

// printAPIErrors surfaces field-level validation messages next to a failed
// submission, one line per field.
func printAPIErrors(err error) {
	errs := fielderrs.New()
	errs.SetFromError(err)

	if errs.HasAny() {
		for field, message := range errs.Fields() {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, message)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "  %s\n", errs.General())
}
