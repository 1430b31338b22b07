package models

import "time"

// Review описывает отзыв пользователя об услуге.
type Review struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	User      *User     `json:"user,omitempty"`
	Service   *Service  `json:"service,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
