package commands

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/config"
	"github.com/r3fitness/fitctl/internal/cli/serverselect"
)

// NewDashCmd creates the dash command
func NewDashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the web dashboard in browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash()
		},
	}
}

func runDash() error {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'fitctl init' to create a configuration file", err)
	}

	server, err := serverselect.ResolveServer(cfg, "")
	if err != nil {
		return err
	}

	fmt.Printf("Opening dashboard for %s...\n", server.Alias)
	fmt.Printf("URL: %s\n", server.URL)

	if err := openBrowser(server.URL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, server.URL)
	}

	return nil
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
