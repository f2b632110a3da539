package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/commands"
	"github.com/r3fitness/fitctl/internal/logger"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "fitctl",
	Short: "fitctl - R3 Fitness Center from your terminal",
	Long: `fitctl - Manage your gym life without leaving the terminal.

Log in, check your workout sheet, track progress and manage plans and
members against an R3 Fitness Center server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env files are optional; env vars win over both
		_ = godotenv.Load(".env")
		_ = godotenv.Load(".env.local")

		logger.Init(os.Getenv("FITCTL_LOG_LEVEL"), os.Getenv("FITCTL_LOG_FORMAT"))
	},
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fitctl version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewUsersCmd())
	rootCmd.AddCommand(commands.NewPlansCmd())
	rootCmd.AddCommand(commands.NewSubscribeCmd())
	rootCmd.AddCommand(commands.NewSubscriptionCmd())
	rootCmd.AddCommand(commands.NewWorkoutsCmd())
	rootCmd.AddCommand(commands.NewSheetsCmd())
	rootCmd.AddCommand(commands.NewProfileCmd())
	rootCmd.AddCommand(commands.NewProgressCmd())
	rootCmd.AddCommand(commands.NewMeasurementsCmd())
	rootCmd.AddCommand(commands.NewDashCmd())
	rootCmd.AddCommand(commands.NewSelectServerCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
