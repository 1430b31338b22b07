package search

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ignatzorin/homeservices-portal/internal/fetch"
	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// MinSuggestionLength — подсказки запрашиваются от двух символов.
const MinSuggestionLength = 2

// API — поисковые методы apiclient.Client.
type API interface {
	Search(ctx context.Context, params url.Values) (*models.SearchResult, error)
	SearchSuggestions(ctx context.Context, q string) ([]string, error)
	PopularSearches(ctx context.Context) ([]string, error)
	SearchFilters(ctx context.Context) (models.SearchFacets, error)
}

// Searcher — серверный поиск посетителя. Повторная отправка тех же фильтров
// подряд не вызывает API.
type Searcher struct {
	api     API
	results *fetch.Resource[string, *models.SearchResult]
	facets  *fetch.Resource[fetch.None, models.SearchFacets]
}

func NewSearcher(api API) *Searcher {
	s := &Searcher{api: api}
	s.results = fetch.New("search", func(ctx context.Context, key string) (*models.SearchResult, error) {
		params, err := url.ParseQuery(key)
		if err != nil {
			return nil, err
		}
		res, err := api.Search(ctx, params)
		if err != nil {
			return nil, err
		}
		if res == nil {
			// API ответило null: показываем пустой результат
			return &models.SearchResult{Pagination: NewPagination(1, DefaultLimit, 0)}, nil
		}
		p := res.Pagination
		res.Pagination = NewPagination(p.Page, p.Limit, p.Total)
		return res, nil
	})
	s.facets = fetch.New("search_filters", func(ctx context.Context, _ fetch.None) (models.SearchFacets, error) {
		return api.SearchFilters(ctx)
	})
	return s
}

// Search выполняет поиск по фильтрам.
func (s *Searcher) Search(ctx context.Context, f Filters) fetch.Snapshot[string, *models.SearchResult] {
	return s.results.Load(ctx, f.Key())
}

// Refresh повторяет последний поиск.
func (s *Searcher) Refresh(ctx context.Context) fetch.Snapshot[string, *models.SearchResult] {
	return s.results.Refetch(ctx)
}

// Ratings возвращает пункты фильтра по рейтингу. Фасеты загружаются один раз;
// при ошибке API используются DefaultRatings.
func (s *Searcher) Ratings(ctx context.Context, f Filters) []RatingOption {
	snap := s.facets.Load(ctx, fetch.None{})
	if snap.Err != nil {
		logger.With("search").WithError(snap.Err).Warn("не удалось получить фасеты поиска")
	}
	return RatingOptions(snap.Data, f)
}

// Suggestions возвращает подсказки. Ошибки API не показываются пользователю.
func (s *Searcher) Suggestions(ctx context.Context, q string) []string {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinSuggestionLength {
		return []string{}
	}

	suggestions, err := s.api.SearchSuggestions(ctx, q)
	if err != nil {
		logger.With("search").WithError(err).Warn("не удалось получить подсказки")
		return []string{}
	}
	return suggestions
}

// Popular возвращает популярные запросы или пустой список.
func (s *Searcher) Popular(ctx context.Context) []string {
	popular, err := s.api.PopularSearches(ctx)
	if err != nil {
		logger.With("search").WithError(err).Warn("не удалось получить популярные запросы")
		return []string{}
	}
	return popular
}
