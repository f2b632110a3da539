package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(cmd, serverAlias, format)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}

func runWhoami(cmd *cobra.Command, serverAlias, format string) error {
	app, err := newApp(serverAlias)
	if err != nil {
		return err
	}

	user, err := app.requireAuth(cmd.Context())
	if err != nil {
		return err
	}

	return writeOutput(os.Stdout, format, user, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "ID\t%s\n", user.ID)
		fmt.Fprintf(tw, "NAME\t%s\n", user.Name)
		fmt.Fprintf(tw, "EMAIL\t%s\n", user.Email)
		fmt.Fprintf(tw, "ROLE\t%s\n", user.Role)
		if user.Phone != "" {
			fmt.Fprintf(tw, "PHONE\t%s\n", user.Phone)
		}
		return tw.Flush()
	})
}
