package search

import "github.com/ignatzorin/homeservices-portal/internal/models"

// NewPagination считает метаданные страницы: totalPages = ceil(total/limit).
func NewPagination(page, limit, total int) models.Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if total < 0 {
		total = 0
	}
	if page < 1 {
		page = 1
	}

	totalPages := (total + limit - 1) / limit

	return models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items      []T
	Pagination models.Pagination
}

// Paginate возвращает срез items для страницы page (с 1).
func Paginate[T any](items []T, page, limit int) Page[T] {
	p := NewPagination(page, limit, len(items))

	start := (p.Page - 1) * p.Limit
	if start > p.Total {
		start = p.Total
	}
	end := start + p.Limit
	if end > p.Total {
		end = p.Total
	}

	return Page[T]{Items: items[start:end], Pagination: p}
}

// PageNumbers возвращает номера страниц для навигации: не больше window штук вокруг текущей.
func PageNumbers(p models.Pagination, window int) []int {
	if p.TotalPages <= 0 || window <= 0 {
		return nil
	}

	start := p.Page - window/2
	if start < 1 {
		start = 1
	}
	end := start + window - 1
	if end > p.TotalPages {
		end = p.TotalPages
		start = end - window + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
