package client

import (
	"context"
	"fmt"
	"net/http"
)

// Users returns all registered users. Admin only.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/all"}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserUpdate is a partial user update; zero fields are left untouched.
type UserUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// UpdateUser patches a user record.
func (c *Client) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*User, error) {
	var user User
	path := fmt.Sprintf("/user/update/%s", userID)
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, body: update}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/user/delete/%s", userID)
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}

// AssignPersonalRole promotes a user to a personal trainer account.
func (c *Client) AssignPersonalRole(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/user/assign-personal/%s", userID)
	return c.do(ctx, request{method: http.MethodPatch, path: path}, nil)
}

// RemovePersonalRole demotes a personal trainer back to a regular user.
func (c *Client) RemovePersonalRole(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/user/remove-personal/%s", userID)
	return c.do(ctx, request{method: http.MethodPatch, path: path}, nil)
}

// Measurements is a user's body measurement record. All values are optional
// on update.
type Measurements struct {
	Weight     float64 `json:"weight,omitempty"`
	Height     float64 `json:"height,omitempty"`
	BodyFat    float64 `json:"bodyFat,omitempty"`
	MuscleMass float64 `json:"muscleMass,omitempty"`
	Chest      float64 `json:"chest,omitempty"`
	Waist      float64 `json:"waist,omitempty"`
	Hips       float64 `json:"hips,omitempty"`
	Arms       float64 `json:"arms,omitempty"`
	Thighs     float64 `json:"thighs,omitempty"`
}

// UserMeasurements fetches a user's body measurements.
func (c *Client) UserMeasurements(ctx context.Context, userID string) (*Measurements, error) {
	var m Measurements
	path := fmt.Sprintf("/user/measurements/%s", userID)
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMeasurements replaces the given fields of a user's measurements.
func (c *Client) UpdateMeasurements(ctx context.Context, userID string, m Measurements) error {
	path := fmt.Sprintf("/user/measurements/%s", userID)
	return c.do(ctx, request{method: http.MethodPut, path: path, body: m}, nil)
}
