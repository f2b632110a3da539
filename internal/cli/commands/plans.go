package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewPlansCmd creates the plans command group. Listing is open to any
// member; management is admin-only.
func NewPlansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Browse and manage subscription plans",
	}

	cmd.AddCommand(newPlansListCmd())
	cmd.AddCommand(newPlansCreateCmd())
	cmd.AddCommand(newPlansUpdateCmd())
	cmd.AddCommand(newPlansDeleteCmd())

	return cmd
}

func newPlansListCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List available plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			plans, err := app.api.Plans(cmd.Context())
			if err != nil {
				return err
			}

			if len(plans) == 0 {
				fmt.Println("No plans available.")
				return nil
			}

			return writeOutput(os.Stdout, format, plans, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tPRICE\tINTERVAL\tACTIVE")
				for _, plan := range plans {
					fmt.Fprintf(tw, "%s\t%s\t%.2f %s\t%s\t%t\n",
						plan.ID, plan.Name, plan.Price, plan.Currency, plan.Interval, plan.IsActive)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}

func newPlansCreateCmd() *cobra.Command {
	var serverAlias string
	var input client.PlanInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RoleAdmin); err != nil {
				return err
			}

			if input.Name == "" {
				return fmt.Errorf("plan name is required (use --name)")
			}

			plan, err := app.api.CreatePlan(cmd.Context(), input)
			if err != nil {
				printAPIErrors(err)
				return fmt.Errorf("failed to create plan: %w", err)
			}

			fmt.Printf("✓ Plan '%s' created (%s).\n", plan.Name, plan.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().StringVar(&input.Name, "name", "", "Plan name")
	cmd.Flags().StringVar(&input.Description, "description", "", "Plan description")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "Monthly price")
	cmd.Flags().StringVar(&input.Currency, "currency", "BRL", "Currency code")
	cmd.Flags().StringVar(&input.Interval, "interval", "month", "Billing interval")
	cmd.Flags().StringSliceVar(&input.Features, "feature", nil, "Plan feature (repeatable)")

	return cmd
}

func newPlansUpdateCmd() *cobra.Command {
	var serverAlias string
	var input client.PlanInput

	cmd := &cobra.Command{
		Use:   "update <plan-id>",
		Short: "Update a plan (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RoleAdmin); err != nil {
				return err
			}

			plan, err := app.api.UpdatePlan(cmd.Context(), args[0], input)
			if err != nil {
				printAPIErrors(err)
				return fmt.Errorf("failed to update plan: %w", err)
			}

			fmt.Printf("✓ Plan '%s' updated.\n", plan.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().StringVar(&input.Name, "name", "", "Plan name")
	cmd.Flags().StringVar(&input.Description, "description", "", "Plan description")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "Monthly price")
	cmd.Flags().StringSliceVar(&input.Features, "feature", nil, "Plan feature (repeatable)")

	return cmd
}

func newPlansDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "rm <plan-id>",
		Short: "Delete a plan (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RoleAdmin); err != nil {
				return err
			}

			if err := app.api.DeletePlan(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Plan %s deleted.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}
