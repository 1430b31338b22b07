package admin

import (
	"strconv"
	"strings"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

const filterAll = "all"

func contains(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

// FilterBookings — поиск по услуге, имени и телефону плюс фильтр статуса.
func FilterBookings(items []models.Booking, term, status string) []models.Booking {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Booking, 0, len(items))
	for _, b := range items {
		matches := contains(b.ServiceName, term) || contains(b.Name, term) || strings.Contains(b.Mobile, term)
		if matches && (status == "" || status == filterAll || b.Status == status) {
			out = append(out, b)
		}
	}
	return out
}

// FilterMessages — поиск по имени, email и теме плюс read/unread.
func FilterMessages(items []models.Contact, term, read string) []models.Contact {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Contact, 0, len(items))
	for _, m := range items {
		matches := contains(m.Name, term) || contains(m.Email, term) || contains(m.Subject, term)
		switch read {
		case "unread":
			matches = matches && !m.IsRead
		case "read":
			matches = matches && m.IsRead
		}
		if matches {
			out = append(out, m)
		}
	}
	return out
}

// UnreadCount считает непрочитанные сообщения.
func UnreadCount(items []models.Contact) int {
	n := 0
	for _, m := range items {
		if !m.IsRead {
			n++
		}
	}
	return n
}

// FilterCategories — поиск по имени и описанию корневых категорий.
func FilterCategories(items []models.Category, term string) []models.Category {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Category, 0, len(items))
	for _, c := range items {
		desc := ""
		if c.Description != nil {
			desc = *c.Description
		}
		if contains(c.Name, term) || contains(desc, term) {
			out = append(out, c)
		}
	}
	return out
}

// FilterServices — поиск по названию и описанию плюс slug категории.
func FilterServices(items []models.Service, term, categorySlug string) []models.Service {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Service, 0, len(items))
	for _, s := range items {
		matches := contains(s.Title, term) || contains(s.Description, term)
		if categorySlug != "" && categorySlug != filterAll {
			matches = matches && s.Category != nil && s.Category.Slug == categorySlug
		}
		if matches {
			out = append(out, s)
		}
	}
	return out
}

// FilterReviews — поиск по комментарию, автору и услуге плюс оценка.
func FilterReviews(items []models.Review, term, rating string) []models.Review {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Review, 0, len(items))
	for _, r := range items {
		matches := contains(r.Comment, term)
		if r.User != nil {
			matches = matches || contains(r.User.Name, term)
		}
		if r.Service != nil {
			matches = matches || contains(r.Service.Title, term)
		}
		if rating != "" && rating != filterAll {
			matches = matches && strconv.Itoa(r.Rating) == rating
		}
		if matches {
			out = append(out, r)
		}
	}
	return out
}

// FilterUsers — поиск по имени и email плюс роль.
func FilterUsers(items []models.User, term, role string) []models.User {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.User, 0, len(items))
	for _, u := range items {
		matches := contains(u.Name, term) || contains(u.Email, term)
		if role != "" && role != filterAll {
			matches = matches && u.Role == role
		}
		if matches {
			out = append(out, u)
		}
	}
	return out
}

// ParentOptions возвращает корневые категории для выбора родителя.
// Глубина дерева не больше двух: у дочерней категории детей быть не может.
func ParentOptions(hierarchy []models.Category, excludeID string) []models.Category {
	out := make([]models.Category, 0, len(hierarchy))
	for _, c := range hierarchy {
		if c.IsRoot() && c.ID != excludeID {
			out = append(out, c)
		}
	}
	return out
}
