package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// ListReviews вызывает GET /reviews, опционально с ?serviceId=.
func (c *Client) ListReviews(ctx context.Context, serviceID string) ([]models.Review, error) {
	endpoint := "/reviews"
	if serviceID != "" {
		endpoint += "?" + url.Values{"serviceId": {serviceID}}.Encode()
	}
	var out []models.Review
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return c.request(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, nil)
}
