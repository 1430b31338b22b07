package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// ListServices вызывает GET /services, опционально с ?categoryId=.
func (c *Client) ListServices(ctx context.Context, categoryID string) ([]models.Service, error) {
	endpoint := "/services"
	if categoryID != "" {
		endpoint += "?" + url.Values{"categoryId": {categoryID}}.Encode()
	}
	var out []models.Service
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeaturedServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.request(ctx, http.MethodGet, "/services/featured", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PopularServices вызывает GET /services/popular (блок на главной).
func (c *Client) PopularServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.request(ctx, http.MethodGet, "/services/popular", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ServicesByCategory вызывает GET /services/category/:slug.
func (c *Client) ServicesByCategory(ctx context.Context, slug string) ([]models.Service, error) {
	if slug == "" {
		return nil, ErrEmptyID
	}
	var out []models.Service
	if err := c.request(ctx, http.MethodGet, "/services/category/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*models.Service, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	var out models.Service
	if err := c.request(ctx, http.MethodGet, "/services/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, in models.ServiceInput) (*models.Service, error) {
	var out models.Service
	if err := c.request(ctx, http.MethodPost, "/services", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, in models.ServiceInput) (*models.Service, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	var out models.Service
	if err := c.request(ctx, http.MethodPatch, "/services/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return c.request(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil)
}
