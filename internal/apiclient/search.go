package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// Search вызывает GET /search. params содержит только заданные фильтры.
func (c *Client) Search(ctx context.Context, params url.Values) (*models.SearchResult, error) {
	var out models.SearchResult
	if err := c.request(ctx, http.MethodGet, "/search?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchSuggestions(ctx context.Context, q string) ([]string, error) {
	var out models.SuggestionsResponse
	endpoint := "/search/suggestions?" + url.Values{"q": {q}}.Encode()
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

func (c *Client) PopularSearches(ctx context.Context) ([]string, error) {
	var out models.PopularSearchesResponse
	if err := c.request(ctx, http.MethodGet, "/search/popular", nil, &out); err != nil {
		return nil, err
	}
	return out.PopularSearches, nil
}

func (c *Client) SearchFilters(ctx context.Context) (models.SearchFacets, error) {
	out := models.SearchFacets{}
	if err := c.request(ctx, http.MethodGet, "/search/filters", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
