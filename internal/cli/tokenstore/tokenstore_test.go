package tokenstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetWithoutTokens(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(Access)
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = store.Get(Refresh)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestMemory_SetTokensOverwritesBoth(t *testing.T) {
	store := NewMemory()

	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetTokens("access-2", "refresh-2"))

	access, err := store.Get(Access)
	require.NoError(t, err)
	assert.Equal(t, "access-2", access)

	refresh, err := store.Get(Refresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh-2", refresh)
}

func TestMemory_ClearRemovesBoth(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.SetTokens("access", "refresh"))

	require.NoError(t, store.Clear())

	_, err := store.Get(Access)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = store.Get(Refresh)
	assert.ErrorIs(t, err, ErrNoToken)

	// Clearing an already empty store is fine.
	require.NoError(t, store.Clear())
}

func TestMemory_SentinelValuesAreAbsent(t *testing.T) {
	for _, sentinel := range []string{"", "null", "undefined"} {
		store := NewMemory()
		require.NoError(t, store.SetTokens(sentinel, sentinel))

		_, err := store.Get(Access)
		assert.ErrorIs(t, err, ErrNoToken, "sentinel %q should read as absent", sentinel)
	}
}

func TestUsable(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"eyJhbGciOiJIUzI1NiJ9.payload.sig", true},
		{"", false},
		{"null", false},
		{"undefined", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Usable(tt.token), "token %q", tt.token)
	}
}

func TestNewKeyring_RejectsInvalidURL(t *testing.T) {
	_, err := NewKeyring("not a url")
	assert.Error(t, err)

	store, err := NewKeyring("https://fitness.example.com")
	require.NoError(t, err)
	assert.Equal(t, "access-token-fitness.example.com", store.key(Access))
	assert.Equal(t, "refresh-token-fitness.example.com", store.key(Refresh))
}
