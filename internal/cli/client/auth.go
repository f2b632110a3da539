package client

import (
	"context"
	"net/http"

	"github.com/r3fitness/fitctl/internal/cli/tokenstore"
)

// Roles known to the backend. "personal" is a trainer account.
const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RolePersonal = "personal"
)

// User is the backend's user record, cached read-only by the session.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// LoginResponse carries the token pair and the authenticated user.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Login authenticates with email and password. It does not persist the
// returned tokens; that is the session manager's job.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp LoginResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/user/login", body: body}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterInput is the new-account payload.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Age      int    `json:"age" validate:"required,gte=12,lte=120"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=8"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/user/register", body: input}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// CurrentUser fetches the user owning the stored access token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/me"}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes the refresh token server-side. With no stored refresh token
// there is nothing to revoke and no request is made.
func (c *Client) Logout(ctx context.Context) error {
	refreshToken, err := c.tokens.Get(tokenstore.Refresh)
	if err != nil {
		return nil
	}

	header := http.Header{}
	header.Set(refreshHeader, refreshToken)
	return c.do(ctx, request{method: http.MethodPost, path: "/user/logout", header: header}, nil)
}
