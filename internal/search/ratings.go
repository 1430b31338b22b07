package search

import (
	"sort"
	"strconv"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// RatingsFacet — ключ списка порогов рейтинга в ответе GET /search/filters.
const RatingsFacet = "ratings"

// DefaultRatings — пороги, если API их не прислало.
var DefaultRatings = []float64{1, 2, 3, 4}

// RatingOption — пункт выпадающего списка "minRating".
type RatingOption struct {
	Value    string
	Selected bool
}

// RatingOptions строит пункты из фасетов и отмечает текущий фильтр.
// Порог из URL, которого нет в списке, добавляется, чтобы выбор не терялся.
func RatingOptions(facets models.SearchFacets, f Filters) []RatingOption {
	ratings := facetRatings(facets)
	if f.MinRating != nil && !containsRating(ratings, *f.MinRating) {
		ratings = append(ratings, *f.MinRating)
		sort.Float64s(ratings)
	}

	out := make([]RatingOption, 0, len(ratings))
	for _, r := range ratings {
		value := strconv.FormatFloat(r, 'f', -1, 64)
		out = append(out, RatingOption{
			Value:    value,
			Selected: f.MinRating != nil && *f.MinRating == r,
		})
	}
	return out
}

func facetRatings(facets models.SearchFacets) []float64 {
	raw, _ := facets[RatingsFacet].([]any)
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		if r, ok := item.(float64); ok && r > 0 && !containsRating(out, r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return append([]float64(nil), DefaultRatings...)
	}
	sort.Float64s(out)
	return out
}

func containsRating(list []float64, r float64) bool {
	for _, v := range list {
		if v == r {
			return true
		}
	}
	return false
}
