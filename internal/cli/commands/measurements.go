package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewMeasurementsCmd creates the measurements command group.
func NewMeasurementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measurements",
		Short: "Track your body measurements",
	}

	cmd.AddCommand(newMeasurementsShowCmd())
	cmd.AddCommand(newMeasurementsSetCmd())

	return cmd
}

func newMeasurementsShowCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your measurements",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireAuth(cmd.Context())
			if err != nil {
				return err
			}

			m, err := app.api.UserMeasurements(cmd.Context(), user.ID)
			if err != nil {
				return err
			}

			return writeOutput(os.Stdout, format, m, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				rows := []struct {
					label string
					value float64
					unit  string
				}{
					{"WEIGHT", m.Weight, "kg"},
					{"HEIGHT", m.Height, "cm"},
					{"BODY FAT", m.BodyFat, "%"},
					{"MUSCLE MASS", m.MuscleMass, "kg"},
					{"CHEST", m.Chest, "cm"},
					{"WAIST", m.Waist, "cm"},
					{"HIPS", m.Hips, "cm"},
					{"ARMS", m.Arms, "cm"},
					{"THIGHS", m.Thighs, "cm"},
				}
				for _, row := range rows {
					if row.value == 0 {
						continue
					}
					fmt.Fprintf(tw, "%s\t%.1f %s\n", row.label, row.value, row.unit)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}

func newMeasurementsSetCmd() *cobra.Command {
	var serverAlias string
	var m client.Measurements

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update your measurements",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireAuth(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.api.UpdateMeasurements(cmd.Context(), user.ID, m); err != nil {
				printAPIErrors(err)
				return fmt.Errorf("failed to update measurements: %w", err)
			}

			fmt.Println("✓ Measurements updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().Float64Var(&m.Weight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&m.Height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&m.BodyFat, "body-fat", 0, "Body fat percentage")
	cmd.Flags().Float64Var(&m.MuscleMass, "muscle-mass", 0, "Muscle mass in kg")
	cmd.Flags().Float64Var(&m.Chest, "chest", 0, "Chest in cm")
	cmd.Flags().Float64Var(&m.Waist, "waist", 0, "Waist in cm")
	cmd.Flags().Float64Var(&m.Hips, "hips", 0, "Hips in cm")
	cmd.Flags().Float64Var(&m.Arms, "arms", 0, "Arms in cm")
	cmd.Flags().Float64Var(&m.Thighs, "thighs", 0, "Thighs in cm")

	return cmd
}
