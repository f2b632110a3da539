package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/r3fitness/fitctl/internal/cli/config"
)

// setupTestEnvironment creates a temporary working directory holding a
// fitness.json and an isolated HOME so user config and keyring state never
// leak into the developer's real environment.
func setupTestEnvironment(t *testing.T, servers []config.Server) {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	cfgPath := tempDir + "/" + config.ConfigFileName
	if err := config.Save(cfgPath, &config.Config{Servers: servers}); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	originalDir := mustGetwd(t)
	mustChdir(t, tempDir)
	t.Cleanup(func() { mustChdir(t, originalDir) })
}

func TestLoginCommand_Structure(t *testing.T) {
	cmd := NewLoginCmd()

	if cmd.Use != "login" {
		t.Errorf("expected Use to be 'login', got %s", cmd.Use)
	}

	for _, flag := range []string{"email", "password", "server"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag to exist", flag)
		}
	}
}

func TestLoginCommand_MissingEmail(t *testing.T) {
	servers := []config.Server{
		{Alias: "test-server", URL: "https://fitness.example.com"},
	}
	setupTestEnvironment(t, servers)

	os.Unsetenv("FITCTL_EMAIL")
	os.Unsetenv("FITCTL_PASSWORD")

	err := runLogin(&cobra.Command{}, "", "", "")
	if err == nil {
		t.Fatal("expected error when email is missing, got nil")
	}

	expectedError := "email is required (use --email flag or FITCTL_EMAIL env var)"
	if err.Error() != expectedError {
		t.Errorf("expected error '%s', got '%s'", expectedError, err.Error())
	}
}

func TestLoginCommand_NoConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	originalDir := mustGetwd(t)
	mustChdir(t, tempDir)
	defer mustChdir(t, originalDir)

	err := runLogin(&cobra.Command{}, "test@example.com", "password123", "")
	if err == nil {
		t.Fatal("expected error when config file is missing, got nil")
	}

	if !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected error about missing config, got: %s", err.Error())
	}
}

func TestLoginCommand_EmptyServerURL(t *testing.T) {
	servers := []config.Server{
		{Alias: "test-server", URL: ""},
	}
	setupTestEnvironment(t, servers)

	err := runLogin(&cobra.Command{}, "test@example.com", "password123", "")
	if err == nil {
		t.Fatal("expected error when server URL is empty, got nil")
	}

	if !strings.Contains(err.Error(), "server URL is empty") {
		t.Errorf("expected empty-URL error, got: %s", err.Error())
	}
}

func TestLoginCommand_UnknownServerAlias(t *testing.T) {
	servers := []config.Server{
		{Alias: "production", URL: "https://fitness.example.com"},
	}
	setupTestEnvironment(t, servers)

	err := runLogin(&cobra.Command{}, "test@example.com", "password123", "staging")
	if err == nil {
		t.Fatal("expected error for unknown server alias, got nil")
	}

	if !strings.Contains(err.Error(), "staging") {
		t.Errorf("expected alias in error, got: %s", err.Error())
	}
}

// Helper functions
func mustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	return wd
}

func mustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
}
