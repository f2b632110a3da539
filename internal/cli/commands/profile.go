package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewProfileCmd creates the profile command group.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your account profile",
	}

	cmd.AddCommand(newProfileSetCmd())

	return cmd
}

func newProfileSetCmd() *cobra.Command {
	var serverAlias string
	var update client.UserUpdate

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update your name, email or phone",
		RunE: func(cmd *cobra.Command, args []string) error {
			if update.Name == "" && update.Email == "" && update.Phone == "" {
				return fmt.Errorf("nothing to update (use --name, --email or --phone)")
			}

			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireAuth(cmd.Context())
			if err != nil {
				return err
			}

			updated, err := app.api.UpdateUser(cmd.Context(), user.ID, update)
			if err != nil {
				printAPIErrors(err)
				return fmt.Errorf("failed to update profile: %w", err)
			}

			fmt.Println("✓ Profile updated.")
			fmt.Printf("  User: %s (%s)\n", updated.Name, updated.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().StringVar(&update.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&update.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "Phone number")

	return cmd
}
