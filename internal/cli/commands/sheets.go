package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewSheetsCmd creates the sheets command group, the personal trainer area:
// trainers (and admins) build and edit the workout sheets that members view
// through 'fitctl workouts'.
func NewSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Manage member workout sheets (trainer)",
	}

	cmd.AddCommand(newSheetsListCmd())
	cmd.AddCommand(newSheetsCreateCmd())
	cmd.AddCommand(newSheetsEditCmd())
	cmd.AddCommand(newSheetsDaySetCmd())

	return cmd
}

// parseExerciseFlag parses one --exercise value of the form
// "name,sets,reps,weight[,notes]". Sets, reps and weight may be left empty
// for duration-based entries.
func parseExerciseFlag(value string) (client.Exercise, error) {
	parts := strings.Split(value, ",")
	if len(parts) < 1 || strings.TrimSpace(parts[0]) == "" {
		return client.Exercise{}, fmt.Errorf("invalid exercise '%s': expected name,sets,reps,weight[,notes]", value)
	}

	ex := client.Exercise{Name: strings.TrimSpace(parts[0])}

	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		sets, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return client.Exercise{}, fmt.Errorf("invalid sets in exercise '%s'", value)
		}
		ex.Sets = sets
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		reps, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return client.Exercise{}, fmt.Errorf("invalid reps in exercise '%s'", value)
		}
		ex.Reps = reps
	}
	if len(parts) > 3 && strings.TrimSpace(parts[3]) != "" {
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return client.Exercise{}, fmt.Errorf("invalid weight in exercise '%s'", value)
		}
		ex.Weight = weight
	}
	if len(parts) > 4 {
		ex.Notes = strings.TrimSpace(strings.Join(parts[4:], ","))
	}

	return ex, nil
}

func parseExerciseFlags(values []string) ([]client.Exercise, error) {
	exercises := make([]client.Exercise, 0, len(values))
	for _, value := range values {
		ex, err := parseExerciseFlag(value)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func newSheetsListCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all workout sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RolePersonal, client.RoleAdmin); err != nil {
				return err
			}

			workouts, err := app.api.Workouts(cmd.Context())
			if err != nil {
				return err
			}

			if len(workouts) == 0 {
				fmt.Println("No workout sheets yet.")
				return nil
			}

			return writeOutput(os.Stdout, format, workouts, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tUSER\tNAME\tEXERCISES")
				for _, workout := range workouts {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
						workout.ID, workout.UserID, workout.Name, len(workout.Exercises))
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}

func newSheetsCreateCmd() *cobra.Command {
	var serverAlias, userID, name string
	var exerciseFlags []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a workout sheet for a member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("a member is required (use --user)")
			}

			exercises, err := parseExerciseFlags(exerciseFlags)
			if err != nil {
				return err
			}

			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RolePersonal, client.RoleAdmin); err != nil {
				return err
			}

			workout, err := app.api.CreateWorkout(cmd.Context(), client.WorkoutInput{
				UserID:    userID,
				Name:      name,
				Exercises: exercises,
			})
			if err != nil {
				printAPIErrors(err)
				return fmt.Errorf("failed to create workout sheet: %w", err)
			}

			fmt.Printf("✓ Sheet '%s' created for user %s (%s).\n", workout.Name, workout.UserID, workout.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().StringVar(&userID, "user", "", "Member user ID")
	cmd.Flags().StringVar(&name, "name", "", "Sheet name")
	cmd.Flags().StringArrayVar(&exerciseFlags, "exercise", nil, "Exercise as name,sets,reps,weight[,notes] (repeatable)")

	return cmd
}

func newSheetsEditCmd() *cobra.Command {
	var serverAlias, userID, name string
	var exerciseFlags []string

	cmd := &cobra.Command{
		Use:   "edit <sheet-id>",
		Short: "Replace a workout sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := parseExerciseFlags(exerciseFlags)
			if err != nil {
				return err
			}

			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RolePersonal, client.RoleAdmin); err != nil {
				return err
			}

			workout, err := app.api.UpdateWorkout(cmd.Context(), args[0], client.WorkoutInput{
				UserID:    userID,
				Name:      name,
				Exercises: exercises,
			})
			if err != nil {
				printAPIErrors(err)
				return fmt.Errorf("failed to update workout sheet: %w", err)
			}

			fmt.Printf("✓ Sheet '%s' updated.\n", workout.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().StringVar(&userID, "user", "", "Member user ID")
	cmd.Flags().StringVar(&name, "name", "", "Sheet name")
	cmd.Flags().StringArrayVar(&exerciseFlags, "exercise", nil, "Exercise as name,sets,reps,weight[,notes] (repeatable)")

	return cmd
}

func newSheetsDaySetCmd() *cobra.Command {
	var serverAlias string
	var exerciseFlags []string

	cmd := &cobra.Command{
		Use:   "day-set <weekday>",
		Short: "Replace the exercises scheduled for a weekday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := parseExerciseFlags(exerciseFlags)
			if err != nil {
				return err
			}

			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireRoles(cmd.Context(), client.RolePersonal, client.RoleAdmin); err != nil {
				return err
			}

			if err := app.api.UpdateExercisesByDay(cmd.Context(), args[0], exercises); err != nil {
				printAPIErrors(err)
				return fmt.Errorf("failed to update %s: %w", args[0], err)
			}

			fmt.Printf("✓ %s updated (%d exercises).\n", args[0], len(exercises))
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().StringArrayVar(&exerciseFlags, "exercise", nil, "Exercise as name,sets,reps,weight[,notes] (repeatable)")

	return cmd
}
