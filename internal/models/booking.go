package models

import "time"

// Booking — заявка клиента на услугу.
// ServiceName денормализован и не является внешним ключом.
type Booking struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"serviceName"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	Address     string    `json:"address"`
	Date        string    `json:"date"`
	Message     *string   `json:"message,omitempty"`
	Status      string    `json:"status"`
	User        *User     `json:"user,omitempty"`
	Service     *Service  `json:"service,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DateOnly возвращает дату бронирования в формате YYYY-MM-DD.
func (b *Booking) DateOnly() string {
	if len(b.Date) >= 10 {
		return b.Date[:10]
	}
	return b.Date
}

// BookingInput — тело POST /bookings.
type BookingInput struct {
	ServiceName string  `json:"serviceName"`
	Name        string  `json:"name"`
	Mobile      string  `json:"mobile"`
	Address     string  `json:"address"`
	Date        string  `json:"date"`
	Message     *string `json:"message,omitempty"`
}

// BookingStatusUpdate — тело PATCH /bookings/:id/status.
type BookingStatusUpdate struct {
	Status string `json:"status"`
}
