package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/r3fitness/fitctl/internal/cli/client"
	"github.com/r3fitness/fitctl/internal/cli/config"
	"github.com/r3fitness/fitctl/internal/cli/guard"
	"github.com/r3fitness/fitctl/internal/cli/serverselect"
	"github.com/r3fitness/fitctl/internal/cli/session"
	"github.com/r3fitness/fitctl/internal/cli/tokenstore"
	"github.com/r3fitness/fitctl/internal/logger"
)

var (
	errNotAuthenticated = errors.New("not authenticated. Please run 'fitctl login' first")
	errSessionPending   = errors.New("session check still pending")
)

// app bundles everything a command needs once a server is resolved: the
// token store scoped to that server, the API client on top of it, and the
// session manager owning the auth lifecycle.
type app struct {
	server  *config.Server
	tokens  tokenstore.Store
	api     *client.Client
	session *session.Manager
}

// newApp loads the project config, resolves the server and wires the client
// stack. This is the common entry point of every networked command.
func newApp(serverAlias string) (*app, error) {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'fitctl init' to create a configuration file", err)
	}

	server, err := serverselect.ResolveServer(cfg, serverAlias)
	if err != nil {
		return nil, err
	}

	if server.URL == "" {
		return nil, fmt.Errorf("server URL is empty. Please edit %s and add a valid URL", config.ConfigFileName)
	}

	tokens, err := tokenstore.NewKeyring(server.URL)
	if err != nil {
		return nil, err
	}

	log := logger.GetLogger()
	api := client.New(server.URL, tokens, log)
	api.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Please run 'fitctl login' again.")
	})

	return &app{
		server:  server,
		tokens:  tokens,
		api:     api,
		session: session.NewManager(api, tokens, log),
	}, nil
}

// guardState resolves the session (at most one network round-trip per
// process) and snapshots it for the guards.
func (a *app) guardState(ctx context.Context) guard.State {
	a.session.EnsureChecked(ctx)
	return guard.State{
		Loading: a.session.IsLoading(),
		User:    a.session.User(),
	}
}

// requireAuth gates a command on an authenticated session and returns the
// current user.
func (a *app) requireAuth(ctx context.Context) (*client.User, error) {
	outcome := guard.RequireAuth(a.guardState(ctx))
	switch outcome {
	case guard.Allow:
		return a.session.User(), nil
	case guard.RedirectLogin:
		return nil, errNotAuthenticated
	case guard.ShowLoading:
		return nil, errSessionPending
	default:
		return nil, fmt.Errorf("unexpected guard outcome %s", outcome)
	}
}

// requireRoles gates a command on one of the given roles.
func (a *app) requireRoles(ctx context.Context, roles ...string) (*client.User, error) {
	outcome := guard.RequireRoles(a.guardState(ctx), roles...)
	switch outcome {
	case guard.Allow:
		return a.session.User(), nil
	case guard.RedirectLogin:
		return nil, errNotAuthenticated
	case guard.RedirectHome:
		user := a.session.User()
		return nil, fmt.Errorf("access denied for role '%s'", user.Role)
	case guard.ShowLoading:
		return nil, errSessionPending
	default:
		return nil, fmt.Errorf("unexpected guard outcome %s", outcome)
	}
}

// requirePublic gates a command on an anonymous session (login, register).
func (a *app) requirePublic(ctx context.Context) error {
	outcome := guard.PublicOnly(a.guardState(ctx))
	switch outcome {
	case guard.Allow:
		return nil
	case guard.RedirectHome:
		user := a.session.User()
		return fmt.Errorf("already logged in as %s. Run 'fitctl logout' first", user.Email)
	case guard.ShowLoading:
		return errSessionPending
	default:
		return fmt.Errorf("unexpected guard outcome %s", outcome)
	}
}
