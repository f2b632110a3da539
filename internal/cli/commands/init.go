package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var alias string

	cmd := &cobra.Command{
		Use:   "init <server-url>",
		Short: "Register a fitness server in the project config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0], alias)
		},
	}

	cmd.Flags().StringVar(&alias, "alias", "default", "Alias for this server")

	return cmd
}

func runInit(serverURL, alias string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, config.ConfigFileName)

	var cfg *config.Config

	// Extend an existing config rather than clobbering it
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load existing config: %w", err)
		}
		fmt.Printf("Found existing %s\n", config.ConfigFileName)
	} else {
		cfg = &config.Config{Servers: []config.Server{}}
	}

	for _, server := range cfg.Servers {
		if server.URL == serverURL {
			fmt.Printf("Server %s is already configured (alias '%s').\n", serverURL, server.Alias)
			return nil
		}
	}

	cfg.Servers = append(cfg.Servers, config.Server{URL: serverURL, Alias: alias})

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("✓ Added server '%s' (%s) to %s\n", alias, serverURL, config.ConfigFileName)
	fmt.Println("\nNext: fitctl login --email you@example.com")
	return nil
}
