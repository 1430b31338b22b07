package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// Local — фильтры страницы категории. Применяются к уже загруженному списку.
type Local struct {
	Term      string
	SortBy    string
	MinRating *float64
	MaxPrice  *int
}

// Apply фильтрует и сортирует услуги, не меняя исходный срез.
func Apply(services []models.Service, opts Local) []models.Service {
	term := strings.ToLower(strings.TrimSpace(opts.Term))

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if term != "" &&
			!strings.Contains(strings.ToLower(svc.Title), term) &&
			!strings.Contains(strings.ToLower(svc.Description), term) {
			continue
		}
		if opts.MinRating != nil && svc.Rating < *opts.MinRating {
			continue
		}
		if opts.MaxPrice != nil && ExtractPrice(svc.Price) > *opts.MaxPrice {
			continue
		}
		out = append(out, svc)
	}

	Sort(out, opts.SortBy)
	return out
}

// Sort сортирует услуги на месте. Неизвестный ключ — исходный порядок (relevance).
func Sort(services []models.Service, sortBy string) {
	switch sortBy {
	case SortName:
		col := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(services, func(i, j int) bool {
			return col.CompareString(services[i].Title, services[j].Title) < 0
		})
	case SortRating:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].Rating > services[j].Rating
		})
	case SortPrice:
		sort.SliceStable(services, func(i, j int) bool {
			return ExtractPrice(services[i].Price) < ExtractPrice(services[j].Price)
		})
	case SortNewest:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].CreatedAt.After(services[j].CreatedAt)
		})
	case SortPopularity:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].ReviewCount > services[j].ReviewCount
		})
	}
}
