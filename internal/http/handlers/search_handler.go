package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/homeservices-portal/internal/fetch"
	"github.com/ignatzorin/homeservices-portal/internal/search"
)

// pageWindow — сколько номеров страниц показывать в навигации.
const pageWindow = 5

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// Page GET /search
// Фильтры берутся из query string; повторная отправка тех же фильтров
// отдаёт уже загруженный результат.
func (h *SearchHandler) Page(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	filters := search.ParseFilters(c.Request.URL.Query())
	searcher := searcherOf(v)

	snap := searcher.Search(ctx, filters)

	categories := fetch.Categories(v.Client).Load(ctx, fetch.None{})

	data := gin.H{
		"Title":      "Search Services",
		"Filters":    filters,
		"Categories": categories.Data,
		"Ratings":    searcher.Ratings(ctx, filters),
		"Sorts":      sortChoices,
		"Error":      errorText(snap.Err, "Search failed"),
	}
	if res := snap.Data; res != nil {
		data["Result"] = res
		data["Pages"] = search.PageNumbers(res.Pagination, pageWindow)
		data["Stale"] = snap.DataKey != filters.Key()
	}
	if filters.Query == "" {
		data["Popular"] = searcher.Popular(ctx)
	}

	render(c, http.StatusOK, "search.html", data)
}

// Suggestions GET /api/search/suggestions?q=
func (h *SearchHandler) Suggestions(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": searcherOf(v).Suggestions(c.Request.Context(), c.Query("q"))})
}

// Popular GET /api/search/popular
func (h *SearchHandler) Popular(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"popularSearches": searcherOf(v).Popular(c.Request.Context())})
}

// Retry POST /search/retry
// Повторяет последний поиск (кнопка после ошибки) и возвращает на страницу результатов.
func (h *SearchHandler) Retry(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	snap := searcherOf(v).Refresh(c.Request.Context())
	redirect(c, "/search?"+snap.Key)
}
