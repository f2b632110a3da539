package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

func member() *client.User   { return &client.User{ID: "u1", Role: client.RoleUser} }
func admin() *client.User    { return &client.User{ID: "a1", Role: client.RoleAdmin} }
func personal() *client.User { return &client.User{ID: "p1", Role: client.RolePersonal} }

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Allow, "allow"},
		{ShowLoading, "loading"},
		{RedirectLogin, "redirect-login"},
		{RedirectHome, "redirect-home"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.outcome.String())
	}
}

func TestPublicOnly(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Outcome
	}{
		{"loading", State{Loading: true}, ShowLoading},
		{"loading wins over logged-in redirect", State{Loading: true, User: member()}, ShowLoading},
		{"anonymous", State{}, Allow},
		{"authenticated", State{User: member()}, RedirectHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicOnly(tt.state))
		})
	}
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Outcome
	}{
		{"loading", State{Loading: true}, ShowLoading},
		{"anonymous", State{}, RedirectLogin},
		{"authenticated", State{User: member()}, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAuth(tt.state))
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name  string
		state State
		roles []string
		want  Outcome
	}{
		{"loading", State{Loading: true}, []string{client.RoleAdmin}, ShowLoading},
		{"anonymous on admin area", State{}, []string{client.RoleAdmin}, RedirectLogin},
		{"member on admin area", State{User: member()}, []string{client.RoleAdmin}, RedirectHome},
		{"admin on admin area", State{User: admin()}, []string{client.RoleAdmin}, Allow},
		{"member on member-or-admin area", State{User: member()}, []string{client.RoleUser, client.RoleAdmin}, Allow},
		{"trainer on member-or-admin area", State{User: personal()}, []string{client.RoleUser, client.RoleAdmin}, RedirectHome},
		{"trainer on trainer area", State{User: personal()}, []string{client.RolePersonal}, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireRoles(tt.state, tt.roles...))
		})
	}
}
