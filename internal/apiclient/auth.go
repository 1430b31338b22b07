package apiclient

import (
	"context"
	"net/http"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// Register вызывает POST /auth/register. Токен не сохраняется: это делает сессия.
func (c *Client) Register(ctx context.Context, in models.RegisterInput) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.credentials(ctx, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login вызывает POST /auth/login.
func (c *Client) Login(ctx context.Context, in models.LoginInput) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.credentials(ctx, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile вызывает POST /auth/profile с текущим токеном.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.request(ctx, http.MethodPost, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
