package tokenstore

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/zalando/go-keyring"
)

const service = "fitctl"

// ErrNoToken is returned when no usable token of the requested kind is stored.
var ErrNoToken = errors.New("no token stored")

// Kind selects which credential a store operation refers to.
type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

// Store holds the access/refresh token pair. It is the sole owner of the
// tokens: nothing else in the client persists or inspects them.
type Store interface {
	Get(kind Kind) (string, error)
	SetTokens(accessToken, refreshToken string) error
	Clear() error
}

// Usable reports whether a stored value is an actual token. Older clients
// wrote the literal strings "null" and "undefined" into storage; treat them
// as absent rather than sending them as credentials.
func Usable(token string) bool {
	return token != "" && token != "null" && token != "undefined"
}

// Keyring stores tokens in the OS keychain/credential manager, keyed per
// server host so sessions against different servers don't collide.
type Keyring struct {
	host string
}

// NewKeyring creates a keyring-backed store scoped to the given server URL.
func NewKeyring(serverURL string) (*Keyring, error) {
	u, err := url.Parse(serverURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", serverURL)
	}
	return &Keyring{host: u.Host}, nil
}

func (k *Keyring) key(kind Kind) string {
	return fmt.Sprintf("%s-token-%s", kind, k.host)
}

func (k *Keyring) Get(kind Kind) (string, error) {
	token, err := keyring.Get(service, k.key(kind))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to load %s token: %w", kind, err)
	}
	if !Usable(token) {
		return "", ErrNoToken
	}
	return token, nil
}

// SetTokens overwrites both tokens.
func (k *Keyring) SetTokens(accessToken, refreshToken string) error {
	if err := keyring.Set(service, k.key(Access), accessToken); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	if err := keyring.Set(service, k.key(Refresh), refreshToken); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// Clear removes both tokens. Removing tokens that were never stored is not
// an error.
func (k *Keyring) Clear() error {
	for _, kind := range []Kind{Access, Refresh} {
		if err := keyring.Delete(service, k.key(kind)); err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				continue
			}
			return fmt.Errorf("failed to delete %s token: %w", kind, err)
		}
	}
	return nil
}
