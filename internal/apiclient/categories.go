package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// ListCategories вызывает GET /categories (плоский список).
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.request(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoriesHierarchy вызывает GET /categories/hierarchy (корни с Children).
func (c *Client) CategoriesHierarchy(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.request(ctx, http.MethodGet, "/categories/hierarchy", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryBySlug вызывает GET /categories/slug/:slug.
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if slug == "" {
		return nil, ErrEmptyID
	}
	var out models.Category
	if err := c.request(ctx, http.MethodGet, "/categories/slug/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	var out models.Category
	if err := c.request(ctx, http.MethodPost, "/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in models.CategoryInput) (*models.Category, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	var out models.Category
	if err := c.request(ctx, http.MethodPatch, "/categories/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return c.request(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}
