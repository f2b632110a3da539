package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

// NewProgressCmd creates the progress command group.
func NewProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track your training progress",
	}

	cmd.AddCommand(newProgressShowCmd())
	cmd.AddCommand(newProgressWeightCmd())
	cmd.AddCommand(newProgressCaloriesCmd())
	cmd.AddCommand(newProgressCompleteCmd())
	cmd.AddCommand(newProgressGoalsCmd())
	cmd.AddCommand(newProgressAchievementCmd())

	return cmd
}

func newProgressShowCmd() *cobra.Command {
	var serverAlias, format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your progress summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			progress, err := app.api.MyProgress(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(os.Stdout, format, progress, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "WORKOUTS COMPLETED\t%d\n", progress.WorkoutsCompleted)
				fmt.Fprintf(tw, "WEIGHT LOST\t%.1f kg\n", progress.WeightLoss)
				fmt.Fprintf(tw, "CALORIES BURNED\t%d\n", progress.CaloriesBurned)
				fmt.Fprintf(tw, "CURRENT STREAK\t%d days\n", progress.CurrentStreak)
				fmt.Fprintf(tw, "STRENGTH\t%d/100\n", progress.Performance.Strength)
				fmt.Fprintf(tw, "ENDURANCE\t%d/100\n", progress.Performance.Endurance)
				fmt.Fprintf(tw, "FLEXIBILITY\t%d/100\n", progress.Performance.Flexibility)
				if err := tw.Flush(); err != nil {
					return err
				}
				if len(progress.Achievements) > 0 {
					fmt.Fprintln(w, "\nAchievements:")
					for _, achievement := range progress.Achievements {
						fmt.Fprintf(w, "  ★ %s\n", achievement)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	addOutputFlag(cmd, &format)

	return cmd
}

func newProgressWeightCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "weight <kg-lost>",
		Short: "Record total weight lost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weightLoss, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid weight '%s': expected a number of kilograms", args[0])
			}

			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if err := app.api.UpdateWeightLoss(cmd.Context(), weightLoss); err != nil {
				return err
			}

			fmt.Printf("✓ Weight loss updated to %.1f kg.\n", weightLoss)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func newProgressCaloriesCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "calories <amount>",
		Short: "Record calories burned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calories, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid calorie amount '%s'", args[0])
			}

			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if err := app.api.UpdateCaloriesBurned(cmd.Context(), calories); err != nil {
				return err
			}

			fmt.Printf("✓ Calories burned updated to %d.\n", calories)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func newProgressCompleteCmd() *cobra.Command {
	var serverAlias string
	var duration, calories int

	cmd := &cobra.Command{
		Use:   "complete <workout-id>",
		Short: "Mark a workout session as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			err = app.api.CompleteWorkout(cmd.Context(), client.CompleteWorkoutInput{
				WorkoutID:      args[0],
				Duration:       duration,
				CaloriesBurned: calories,
			})
			if err != nil {
				return err
			}

			fmt.Println("✓ Workout completed. Nice job!")
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Session duration in minutes")
	cmd.Flags().IntVar(&calories, "calories", 0, "Calories burned in the session")

	return cmd
}

func newProgressAchievementCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "achievement <text>",
		Short: "Record an achievement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if err := app.api.AddAchievement(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Achievement recorded: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")

	return cmd
}

func newProgressGoalsCmd() *cobra.Command {
	var serverAlias string
	var goals client.MonthlyGoals

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Set your monthly goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(serverAlias)
			if err != nil {
				return err
			}
			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if err := app.api.UpdateMonthlyGoals(cmd.Context(), goals); err != nil {
				return err
			}

			fmt.Println("✓ Monthly goals updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias (uses the selected server if not specified)")
	cmd.Flags().Float64Var(&goals.WeightLoss, "weight-loss", 0, "Target weight loss in kg")
	cmd.Flags().IntVar(&goals.Workouts, "workouts", 0, "Target number of workouts")
	cmd.Flags().IntVar(&goals.Calories, "calories", 0, "Target calories burned")

	return cmd
}
