package client

import (
	"context"
	"fmt"
	"net/http"
)

// Plan is a subscription plan offered by the gym.
type Plan struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Plans lists the available subscription plans.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var resp struct {
		Plans []Plan `json:"plans"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/payment/plans"}, &resp); err != nil {
		return nil, err
	}
	return resp.Plans, nil
}

// PlanInput is the create/update payload for a plan.
type PlanInput struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Interval    string   `json:"interval,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// CreatePlan adds a new plan. Admin only.
func (c *Client) CreatePlan(ctx context.Context, input PlanInput) (*Plan, error) {
	var plan Plan
	if err := c.do(ctx, request{method: http.MethodPost, path: "/payment/plans", body: input}, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan patches an existing plan. Admin only.
func (c *Client) UpdatePlan(ctx context.Context, planID string, input PlanInput) (*Plan, error) {
	var plan Plan
	path := fmt.Sprintf("/payment/plans/%s", planID)
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, body: input}, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes a plan. Admin only.
func (c *Client) DeletePlan(ctx context.Context, planID string) error {
	path := fmt.Sprintf("/payment/plans/%s", planID)
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}

// Subscription is a user's active monthly payment.
type Subscription struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	PlanID    string `json:"planId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// UserSubscription fetches the subscription for a user, if any.
func (c *Client) UserSubscription(ctx context.Context, userID string) (*Subscription, error) {
	var sub Subscription
	path := fmt.Sprintf("/payment/monthly-payment/user/%s", userID)
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// SubscribeInput starts a subscription for a user on a plan.
type SubscribeInput struct {
	UserID          string `json:"userId"`
	PlanID          string `json:"planId"`
	PaymentMethodID string `json:"paymentMethodId"`
}

// Subscribe creates a monthly subscription.
func (c *Client) Subscribe(ctx context.Context, input SubscribeInput) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, request{method: http.MethodPost, path: "/payment/monthly-payment", body: input}, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription cancels a subscription by ID.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) error {
	path := fmt.Sprintf("/payment/monthly-payment/%s/cancel", subscriptionID)
	return c.do(ctx, request{method: http.MethodPatch, path: path}, nil)
}
