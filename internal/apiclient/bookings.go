package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// CreateBooking вызывает POST /bookings. Доступно и без авторизации.
func (c *Client) CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	var out models.Booking
	if err := c.request(ctx, http.MethodPost, "/bookings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBookings возвращает бронирования текущего пользователя.
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.request(ctx, http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllBookings возвращает все бронирования (админка).
func (c *Client) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.request(ctx, http.MethodGet, "/bookings?all=true", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBookingStatus вызывает узкий PATCH /bookings/:id/status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	var out models.Booking
	endpoint := "/bookings/" + url.PathEscape(id) + "/status"
	if err := c.request(ctx, http.MethodPatch, endpoint, models.BookingStatusUpdate{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return c.request(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil)
}
