package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

func (c *Client) CreateContact(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	var out models.Contact
	if err := c.request(ctx, http.MethodPost, "/contact", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	if err := c.request(ctx, http.MethodGet, "/contact", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkContactRead вызывает PATCH /contact/:id/read. Повторная отметка допустима.
func (c *Client) MarkContactRead(ctx context.Context, id string) (*models.Contact, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	var out models.Contact
	if err := c.request(ctx, http.MethodPatch, "/contact/"+url.PathEscape(id)+"/read", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return c.request(ctx, http.MethodDelete, "/contact/"+url.PathEscape(id), nil, nil)
}
