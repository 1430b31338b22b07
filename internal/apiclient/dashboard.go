package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.request(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardActivity(ctx context.Context) (*models.DashboardActivity, error) {
	var out models.DashboardActivity
	if err := c.request(ctx, http.MethodGet, "/dashboard/activity", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Seed вызывает POST /seed/:target (all, users, categories, services ...).
func (c *Client) Seed(ctx context.Context, target string) (*models.MessageResponse, error) {
	if target == "" {
		return nil, ErrEmptyID
	}
	var out models.MessageResponse
	if err := c.request(ctx, http.MethodPost, "/seed/"+url.PathEscape(target), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
