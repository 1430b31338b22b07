package search

import (
	"net/url"
	"strconv"
	"strings"
)

// Допустимые значения sortBy.
const (
	SortRelevance  = "relevance"
	SortRating     = "rating"
	SortPopularity = "popularity"
	SortPrice      = "price"
	SortNewest     = "newest"
	SortName       = "name"
)

const (
	DefaultSortOrder = "desc"
	DefaultLimit     = 12
	MaxLimit         = 100
)

var sortOptions = map[string]struct{}{
	SortRelevance:  {},
	SortRating:     {},
	SortPopularity: {},
	SortPrice:      {},
	SortNewest:     {},
	SortName:       {},
}

// Filters — параметры GET /search.
type Filters struct {
	Query     string
	Category  string
	MinRating *float64
	MaxPrice  *int
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// DefaultFilters — фильтры пустой страницы поиска.
func DefaultFilters() Filters {
	return Filters{
		SortBy:    SortRelevance,
		SortOrder: DefaultSortOrder,
		Page:      1,
		Limit:     DefaultLimit,
	}
}

// ParseFilters читает фильтры из query string; некорректные значения заменяются дефолтами.
func ParseFilters(q url.Values) Filters {
	f := DefaultFilters()
	for key := range q {
		f = f.set(key, q.Get(key))
	}
	return f.normalize()
}

// With меняет один фильтр. Любое изменение, кроме page, возвращает на первую страницу.
func (f Filters) With(key, value string) Filters {
	next := f.set(key, value)
	if key != "page" {
		next.Page = 1
	}
	return next.normalize()
}

// WithPage переходит на страницу page.
func (f Filters) WithPage(page int) Filters {
	return f.With("page", strconv.Itoa(page))
}

func (f Filters) set(key, value string) Filters {
	value = strings.TrimSpace(value)
	switch key {
	case "query":
		f.Query = value
	case "category":
		f.Category = value
	case "minRating":
		f.MinRating = nil
		if r, err := strconv.ParseFloat(value, 64); err == nil && r > 0 {
			f.MinRating = &r
		}
	case "maxPrice":
		f.MaxPrice = nil
		if p, err := strconv.Atoi(value); err == nil && p > 0 {
			f.MaxPrice = &p
		}
	case "sortBy":
		f.SortBy = value
	case "sortOrder":
		f.SortOrder = strings.ToLower(value)
	case "page":
		if p, err := strconv.Atoi(value); err == nil {
			f.Page = p
		}
	case "limit":
		if l, err := strconv.Atoi(value); err == nil {
			f.Limit = l
		}
	}
	return f
}

func (f Filters) normalize() Filters {
	if _, ok := sortOptions[f.SortBy]; !ok {
		f.SortBy = SortRelevance
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		f.SortOrder = DefaultSortOrder
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}
	return f
}

// Values возвращает только заданные параметры запроса.
func (f Filters) Values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.MinRating != nil {
		v.Set("minRating", strconv.FormatFloat(*f.MinRating, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", strconv.Itoa(*f.MaxPrice))
	}
	v.Set("sortBy", f.SortBy)
	v.Set("sortOrder", f.SortOrder)
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("limit", strconv.Itoa(f.Limit))
	return v
}

// Key — стабильный ключ фильтров (параметры отсортированы Encode).
func (f Filters) Key() string {
	return f.Values().Encode()
}
