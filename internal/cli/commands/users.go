package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewUsersCmd creates the users command group (admin area).
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage gym members (admin)",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersPromoteCmd())
	cmd.AddCommand(newUsersDemoteCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RoleAdmin); err != nil {
				return err
			}

			users, err := app.api.Users(cmd.Context())
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			return writeOutput(os.Stdout, format, users, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
				for _, user := range users {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, user.Role)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}

func newUsersPromoteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "promote <user-id>",
		Short: "Grant a user the personal trainer role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RoleAdmin); err != nil {
				return err
			}

			if err := app.api.AssignPersonalRole(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ User %s is now a personal trainer.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func newUsersDemoteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "demote <user-id>",
		Short: "Remove the personal trainer role from a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RoleAdmin); err != nil {
				return err
			}

			if err := app.api.RemovePersonalRole(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ User %s is a regular member again.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "rm <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RoleAdmin); err != nil {
				return err
			}

			if err := app.api.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ User %s deleted.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}
