package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewWorkoutsCmd creates the workouts command group. Workout sheets are
// visible to members and admins; trainers manage them via the personal area.
func NewWorkoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "View your workout sheet",
	}

	cmd.AddCommand(newWorkoutsShowCmd())
	cmd.AddCommand(newWorkoutsDayCmd())

	return cmd
}

func newWorkoutsShowCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your full workout sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireRoles(cmd.Context(), client.RoleUser, client.RoleAdmin)
			if err != nil {
				return err
			}

			workout, err := app.api.WorkoutByUser(cmd.Context(), user.ID)
			if err != nil {
				return err
			}

			if len(workout.Exercises) == 0 {
				fmt.Println("No exercises on your sheet yet.")
				return nil
			}

			return writeOutput(os.Stdout, format, workout, func(w io.Writer) error {
				fmt.Fprintf(w, "Workout: %s\n\n", workout.Name)
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "EXERCISE\tSETS\tREPS\tWEIGHT\tNOTES")
				for _, ex := range workout.Exercises {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%s\n", ex.Name, ex.Sets, ex.Reps, ex.Weight, ex.Notes)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}

func newWorkoutsDayCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:   "day <weekday>",
		Short: "Show the exercises scheduled for a weekday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			user, err := app.requireRoles(cmd.Context(), client.RoleUser, client.RoleAdmin)
			if err != nil {
				return err
			}

			exercises, err := app.api.ExercisesByDay(cmd.Context(), args[0], user.ID)
			if err != nil {
				return err
			}

			if len(exercises) == 0 {
				fmt.Printf("Nothing scheduled for %s. Rest day!\n", args[0])
				return nil
			}

			return writeOutput(os.Stdout, format, exercises, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "EXERCISE\tSETS\tREPS\tWEIGHT")
				for _, ex := range exercises {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\n", ex.Name, ex.Sets, ex.Reps, ex.Weight)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}
