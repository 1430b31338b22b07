package models

// Pagination — метаданные страницы результатов поиска.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// SearchFiltersEcho — фильтры, которые API применило к запросу.
type SearchFiltersEcho struct {
	Query     *string  `json:"query,omitempty"`
	Category  *string  `json:"category,omitempty"`
	MinRating *float64 `json:"minRating,omitempty"`
	MaxPrice  *int     `json:"maxPrice,omitempty"`
	SortBy    string   `json:"sortBy"`
	SortOrder string   `json:"sortOrder"`
}

// SearchResult — ответ GET /search.
type SearchResult struct {
	Services        []Service         `json:"services"`
	Categories      []Category        `json:"categories,omitempty"`
	Pagination      Pagination        `json:"pagination"`
	Filters         SearchFiltersEcho `json:"filters"`
	PopularSearches []string          `json:"popularSearches"`
	Suggestions     []string          `json:"suggestions"`
}

// SuggestionsResponse — ответ GET /search/suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// PopularSearchesResponse — ответ GET /search/popular.
type PopularSearchesResponse struct {
	PopularSearches []string `json:"popularSearches"`
}

// SearchFacets — ответ GET /search/filters. Формат задаёт API.
type SearchFacets map[string]any
