// Package session owns the client-side auth lifecycle: it caches the
// authenticated user, drives login/logout, and resolves the stored token
// pair into a session state commands can gate on.
//
// States: Initializing (loading, no user) -> Anonymous | Authenticated.
// Whenever the token store is cleared the cached user is cleared in the same
// critical section, so an absent access token always implies an absent user.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/r3fitness/fitctl/internal/cli/client"
	"github.com/r3fitness/fitctl/internal/cli/tokenstore"
)

// Manager holds the current session. It is injected into commands rather
// than living as a package-level singleton.
type Manager struct {
	api    *client.Client
	tokens tokenstore.Store
	log    zerolog.Logger

	// Serializes the startup check so concurrent EnsureChecked callers
	// cannot both run it.
	checkMu sync.Mutex

	mu         sync.Mutex
	user       *client.User
	loading    bool
	hasChecked bool
}

// NewManager creates a session manager in the Initializing state.
func NewManager(api *client.Client, tokens tokenstore.Store, log zerolog.Logger) *Manager {
	return &Manager{
		api:     api,
		tokens:  tokens,
		log:     log,
		loading: true,
	}
}

// User returns the cached authenticated user, or nil when anonymous.
func (m *Manager) User() *client.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsLoading reports whether the initial auth check is still pending.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// EnsureChecked runs the startup auth check at most once per process. A
// caller arriving while the check is in flight blocks until it settles.
func (m *Manager) EnsureChecked(ctx context.Context) {
	m.checkMu.Lock()
	defer m.checkMu.Unlock()

	m.mu.Lock()
	checked := m.hasChecked
	m.mu.Unlock()
	if checked {
		return
	}

	m.CheckAuthStatus(ctx)
}

// CheckAuthStatus resolves the stored tokens into a session. With no usable
// access token it settles to Anonymous without any network call. A stored
// token the backend rejects is cleared. Failures are logged, not returned:
// every outcome ends the loading state.
func (m *Manager) CheckAuthStatus(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.hasChecked = true
		m.mu.Unlock()
	}()

	if _, err := m.tokens.Get(tokenstore.Access); err != nil {
		m.setUser(nil)
		return
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("stored session rejected, clearing tokens")
		m.clearSession()
		return
	}
	m.setUser(user)
}

// Login authenticates and, on success, persists the returned token pair and
// caches the user. On failure the error is propagated untouched and the
// session is left unchanged.
func (m *Manager) Login(ctx context.Context, email, password string) (*client.User, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.tokens.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, err
	}
	user := resp.User
	m.user = &user
	m.loading = false
	m.hasChecked = true
	return &user, nil
}

// Logout revokes the session server-side on a best-effort basis, then
// unconditionally clears the stored tokens and the cached user.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn().Err(err).Msg("logout request failed")
	}
	m.clearSession()

	m.mu.Lock()
	m.loading = false
	m.hasChecked = true
	m.mu.Unlock()
}

func (m *Manager) setUser(user *client.User) {
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
}

// clearSession removes tokens and user together to preserve the
// no-token-implies-no-user invariant.
func (m *Manager) clearSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.tokens.Clear(); err != nil {
		m.log.Error().Err(err).Msg("failed to clear stored tokens")
	}
	m.user = nil
}
