package commands

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewSubscriptionCmd creates the subscription command group.
func NewSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Manage your plan subscription",
	}

	cmd.AddCommand(newSubscriptionShowCmd())
	cmd.AddCommand(newSubscriptionCancelCmd())

	return cmd
}

func newSubscriptionShowCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your current subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireAuth(cmd.Context())
			if err != nil {
				return err
			}

			sub, err := app.api.UserSubscription(cmd.Context(), user.ID)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
					fmt.Println("No active subscription.")
					fmt.Println("\nSubscribe with: fitctl subscribe <plan-id>")
					return nil
				}
				return err
			}

			fmt.Printf("Subscription %s\n", sub.ID)
			fmt.Printf("  Plan:   %s\n", sub.PlanID)
			fmt.Printf("  Status: %s\n", sub.Status)
			fmt.Printf("  Since:  %s\n", sub.CreatedAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func newSubscriptionCancelCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel your current subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireAuth(cmd.Context())
			if err != nil {
				return err
			}

			sub, err := app.api.UserSubscription(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("failed to look up subscription: %w", err)
			}

			if err := app.api.CancelSubscription(cmd.Context(), sub.ID); err != nil {
				return err
			}

			fmt.Println("✓ Subscription cancelled.")
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

// NewSubscribeCmd creates the subscribe command.
func NewSubscribeCmd() *cobra.Command {
	var serverAlias, paymentMethodID string

	cmd := &cobra.Command{
		Use:   "subscribe <plan-id>",
		Short: "Subscribe to a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireAuth(cmd.Context())
			if err != nil {
				return err
			}

			if paymentMethodID == "" {
				return fmt.Errorf("a payment method is required (use --payment-method)")
			}

			sub, err := app.api.Subscribe(cmd.Context(), client.SubscribeInput{
				UserID:          user.ID,
				PlanID:          args[0],
				PaymentMethodID: paymentMethodID,
			})
			if err != nil {
				printAPIErrors(err)
				return fmt.Errorf("subscription failed: %w", err)
			}

			fmt.Printf("✓ Subscribed to plan %s (subscription %s).\n", sub.PlanID, sub.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().StringVar(&paymentMethodID, "payment-method", "", "Payment method ID")

	return cmd
}
