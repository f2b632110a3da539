package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3fitness/fitctl/internal/cli/client"
	"github.com/r3fitness/fitctl/internal/cli/tokenstore"
)

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *tokenstore.Memory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := tokenstore.NewMemory()
	api := client.New(srv.URL, store, zerolog.Nop())
	return NewManager(api, store, zerolog.Nop()), store
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func TestManager_StartsInitializing(t *testing.T) {
	m, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.True(t, m.IsLoading())
	assert.Nil(t, m.User())
}

func TestCheckAuthStatus_NoTokenSettlesAnonymousWithoutNetwork(t *testing.T) {
	var calls int32
	m, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	m.CheckAuthStatus(context.Background())

	assert.False(t, m.IsLoading())
	assert.Nil(t, m.User())
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls), "no network call without a stored token")
}

func TestCheckAuthStatus_ValidTokenAuthenticates(t *testing.T) {
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/user/me", r.URL.Path)
		writeJSON(w, http.StatusOK, client.User{ID: "u1", Email: "ana@example.com", Role: client.RoleUser})
	}))
	require.NoError(t, store.SetTokens("stored-access", "stored-refresh"))

	m.CheckAuthStatus(context.Background())

	assert.False(t, m.IsLoading())
	require.NotNil(t, m.User())
	assert.Equal(t, "ana@example.com", m.User().Email)
}

func TestCheckAuthStatus_RejectedTokenClearsSession(t *testing.T) {
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid token"})
	}))
	require.NoError(t, store.SetTokens("stale-access", "stale-refresh"))

	m.CheckAuthStatus(context.Background())

	assert.False(t, m.IsLoading())
	assert.Nil(t, m.User())

	_, err := store.Get(tokenstore.Access)
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
	_, err = store.Get(tokenstore.Refresh)
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
}

func TestEnsureChecked_RunsAtMostOnce(t *testing.T) {
	var calls int32
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, client.User{ID: "u1", Role: client.RoleUser})
	}))
	require.NoError(t, store.SetTokens("stored-access", "stored-refresh"))

	m.EnsureChecked(context.Background())
	m.EnsureChecked(context.Background())
	m.EnsureChecked(context.Background())

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestEnsureChecked_ConcurrentCallersRunOnce(t *testing.T) {
	var calls int32
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, client.User{ID: "u1", Role: client.RoleUser})
	}))
	require.NoError(t, store.SetTokens("stored-access", "stored-refresh"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.EnsureChecked(context.Background())
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.False(t, m.IsLoading())
	require.NotNil(t, m.User())
}

func TestLogin_SuccessPersistsTokensAndUser(t *testing.T) {
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/user/login", r.URL.Path)

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "ana@example.com", creds.Email)

		writeJSON(w, http.StatusOK, client.LoginResponse{
			AccessToken:  "fresh-access",
			RefreshToken: "fresh-refresh",
			User:         client.User{ID: "u1", Email: creds.Email, Role: client.RoleUser},
		})
	}))

	user, err := m.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.False(t, m.IsLoading())

	access, err := store.Get(tokenstore.Access)
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", access)

	refresh, err := store.Get(tokenstore.Refresh)
	require.NoError(t, err)
	assert.Equal(t, "fresh-refresh", refresh)
}

func TestLogin_FailureLeavesSessionUnchanged(t *testing.T) {
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid credentials"})
	}))

	_, err := m.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr, "backend error propagated untouched")
	assert.Equal(t, "invalid credentials", apiErr.Message)

	assert.Nil(t, m.User())
	_, err = store.Get(tokenstore.Access)
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
}

func TestLogout_ClearsSessionEvenWhenServerFails(t *testing.T) {
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/user/login":
			writeJSON(w, http.StatusOK, client.LoginResponse{
				AccessToken:  "fresh-access",
				RefreshToken: "fresh-refresh",
				User:         client.User{ID: "u1", Role: client.RoleUser},
			})
		case "/api/v1/user/logout":
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "server error"})
		}
	}))

	_, err := m.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, m.User())

	m.Logout(context.Background())

	assert.Nil(t, m.User())
	_, err = store.Get(tokenstore.Access)
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
	_, err = store.Get(tokenstore.Refresh)
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
}

// An absent access token must always imply an absent user, whatever sequence
// of operations ran before.
func TestInvariant_NoAccessTokenImpliesNoUser(t *testing.T) {
	m, store := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/user/login":
			writeJSON(w, http.StatusOK, client.LoginResponse{
				AccessToken:  "fresh-access",
				RefreshToken: "fresh-refresh",
				User:         client.User{ID: "u1", Role: client.RoleUser},
			})
		case "/api/v1/user/me":
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid token"})
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))

	check := func(step string) {
		if _, err := store.Get(tokenstore.Access); err != nil {
			assert.Nil(t, m.User(), "after %s: user present without access token", step)
		}
	}

	check("start")
	m.CheckAuthStatus(context.Background())
	check("check with no token")
	_, _ = m.Login(context.Background(), "ana@example.com", "secret")
	check("login")
	m.Logout(context.Background())
	check("logout")
	require.NoError(t, store.SetTokens("stale-access", "stale-refresh"))
	m.CheckAuthStatus(context.Background())
	check("check with rejected token")
}
