// Package guard decides whether a session state may proceed into a command,
// mirroring the route gates of the web dashboard: public-only for the login
// and register flows, authenticated-only for member features, role-restricted
// for the admin and trainer areas.
package guard

import "github.com/r3fitness/fitctl/internal/cli/client"

// Outcome is a navigational decision derived from session state.
type Outcome int

const (
	// Allow lets the guarded action proceed.
	Allow Outcome = iota
	// ShowLoading means the session is still resolving; no redirect decision
	// may be made yet.
	ShowLoading
	// RedirectLogin sends an anonymous caller to the login flow.
	RedirectLogin
	// RedirectHome sends an authenticated caller back to their landing page.
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case ShowLoading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// State is the slice of session state guards decide on.
type State struct {
	Loading bool
	User    *client.User
}

// PublicOnly admits anonymous callers only. Loading always wins over a
// redirect so a pending session check can't bounce the caller prematurely.
func PublicOnly(s State) Outcome {
	if s.Loading {
		return ShowLoading
	}
	if s.User != nil {
		return RedirectHome
	}
	return Allow
}

// RequireAuth admits authenticated callers only.
func RequireAuth(s State) Outcome {
	if s.Loading {
		return ShowLoading
	}
	if s.User == nil {
		return RedirectLogin
	}
	return Allow
}

// RequireRoles admits authenticated callers whose role is in the allowed
// set. Anonymous callers go to login; wrong-role callers go home.
func RequireRoles(s State, roles ...string) Outcome {
	if s.Loading {
		return ShowLoading
	}
	if s.User == nil {
		return RedirectLogin
	}
	for _, role := range roles {
		if s.User.Role == role {
			return Allow
		}
	}
	return RedirectHome
}
