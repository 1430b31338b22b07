package models

import "time"

// Category представляет категорию услуг.
// Children заполняется только ответом /categories/hierarchy.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	Image       *string    `json:"image,omitempty"`
	IsActive    bool       `json:"isActive"`
	SortOrder   int        `json:"sortOrder"`
	ParentID    *string    `json:"parentId,omitempty"`
	Children    []Category `json:"children,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsRoot сообщает, что категория верхнего уровня.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// CategoryInput — тело POST/PATCH /categories.
type CategoryInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Image       *string `json:"image,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Service — услуга, которую можно забронировать.
// Price и Duration — произвольный текст ("AED 299", "2-3 hours").
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	Reviews     []Review  `json:"reviews,omitempty"`
	Price       string    `json:"price"`
	Duration    string    `json:"duration"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
	Category    *Category `json:"category,omitempty"`
	CategoryID  string    `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceInput — тело POST/PATCH /services.
type ServiceInput struct {
	Title       string   `json:"title"`
	CategoryID  string   `json:"categoryId"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive,omitempty"`
	SortOrder   *int     `json:"sortOrder,omitempty"`
}
