package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"sosio/internal/identity"
	"sosio/internal/models"
)

// LoginResult is the body of a successful login.
type LoginResult struct {
	Message string            `json:"message"`
	User    identity.UserView `json:"user"`
	Token   string            `json:"token"`
}

// Profile is the member profile subset.
type Profile struct {
	ID       uint     `json:"id"`
	Email    string   `json:"email"`
	Fullname string   `json:"fullname"`
	Codename string   `json:"codename"`
	Role     string   `json:"role"`
	Balance  *float64 `json:"balance"`
}

// Login authenticates and returns the full login body. Failures carry the
// server message in *HTTPError.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	raw, err := c.send(ctx, "/login", RequestConfig{Method: http.MethodPost, Body: body})
	if err != nil {
		return nil, err
	}
	if _, err := unwrap(raw); err != nil {
		return nil, err
	}

	// message and token sit beside user, so decode the whole body.
	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode login: %w", err)
	}
	return &result, nil
}

// User fetches a member profile.
func (c *Client) User(ctx context.Context, userID uint) (*Profile, error) {
	return get[Profile](ctx, c, fmt.Sprintf("/api/user/%d", userID))
}

// Dashboard fetches the dashboard summary.
func (c *Client) Dashboard(ctx context.Context, userID uint) (*models.DashboardSummary, error) {
	return get[models.DashboardSummary](ctx, c, fmt.Sprintf("/api/dashboard/%d", userID))
}

// Loans fetches loans with totals.
func (c *Client) Loans(ctx context.Context, userID uint) (*models.LoansView, error) {
	return get[models.LoansView](ctx, c, fmt.Sprintf("/api/loans/%d", userID))
}

// Investments fetches the portfolio.
func (c *Client) Investments(ctx context.Context, userID uint) (*models.InvestmentsView, error) {
	return get[models.InvestmentsView](ctx, c, fmt.Sprintf("/api/investments/%d", userID))
}

// History fetches transaction history, newest first.
func (c *Client) History(ctx context.Context, userID uint) ([]models.Transaction, error) {
	rows, err := get[[]models.Transaction](ctx, c, fmt.Sprintf("/api/history/%d", userID))
	if err != nil {
		return nil, err
	}
	return *rows, nil
}

// Health reports whether the server answered its health check.
func (c *Client) Health(ctx context.Context) (bool, error) {
	status, err := get[struct {
		OK bool `json:"ok"`
	}](ctx, c, "/health")
	if err != nil {
		return false, err
	}
	return status.OK, nil
}

// ExportHistory downloads the history workbook.
func (c *Client) ExportHistory(ctx context.Context, userID uint) ([]byte, error) {
	return c.send(ctx, fmt.Sprintf("/api/history/%d/export", userID), RequestConfig{})
}

func get[T any](ctx context.Context, c *Client, target string) (*T, error) {
	raw, err := c.Do(ctx, target, RequestConfig{})
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", target, err)
	}
	return &v, nil
}
