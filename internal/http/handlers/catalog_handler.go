package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/ignatzorin/homeservices-portal/internal/fetch"
	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
	"github.com/ignatzorin/homeservices-portal/internal/search"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

// CatalogHandler — публичные страницы каталога. Каждая страница загружает
// свои данные заново: ресурсы создаются на запрос.
type CatalogHandler struct {
	val *validation.Validator
}

func NewCatalogHandler(val *validation.Validator) *CatalogHandler {
	return &CatalogHandler{val: val}
}

// sortChoices — варианты сортировки на страницах списка услуг.
var sortChoices = []string{search.SortRelevance, search.SortName, search.SortRating, search.SortPrice, search.SortNewest}

func errorText(err error, fallback string) string {
	if err == nil {
		return ""
	}
	return apperror.MessageOf(err, fallback)
}

// Home GET /
func (h *CatalogHandler) Home(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	featured := fetch.FeaturedServices(v.Client)
	popular := fetch.PopularServices(v.Client)
	hierarchy := fetch.CategoriesHierarchy(v.Client)

	var (
		fs, ps fetch.Snapshot[fetch.None, []models.Service]
		hs     fetch.Snapshot[fetch.None, []models.Category]
		g      errgroup.Group
	)
	g.Go(func() error {
		fs = featured.Load(ctx, fetch.None{})
		return nil
	})
	g.Go(func() error {
		ps = popular.Load(ctx, fetch.None{})
		return nil
	})
	g.Go(func() error {
		hs = hierarchy.Load(ctx, fetch.None{})
		return nil
	})
	_ = g.Wait()

	// Популярные услуги необязательны: при ошибке блок просто не показывается
	if ps.Err != nil {
		logger.With("catalog").WithError(ps.Err).Warn("не удалось загрузить популярные услуги")
	}

	render(c, http.StatusOK, "home.html", gin.H{
		"Title":         "Home Services in the UAE",
		"Featured":      fs.Data,
		"FeaturedError": errorText(fs.Err, "Failed to load services"),
		"Popular":       ps.Data,
		"Categories":    hs.Data,
		"MenuError":     errorText(hs.Err, "Failed to load categories"),
	})
}

// Services GET /services?categoryId=&q=&sortBy=
func (h *CatalogHandler) Services(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	categoryID := c.Query("categoryId")

	services := fetch.Services(v.Client)
	categories := fetch.Categories(v.Client)

	var (
		ss fetch.Snapshot[string, []models.Service]
		cs fetch.Snapshot[fetch.None, []models.Category]
		g  errgroup.Group
	)
	g.Go(func() error {
		ss = services.Load(ctx, categoryID)
		return nil
	})
	g.Go(func() error {
		cs = categories.Load(ctx, fetch.None{})
		return nil
	})
	_ = g.Wait()

	local := search.Local{Term: c.Query("q"), SortBy: c.Query("sortBy")}
	render(c, http.StatusOK, "services.html", gin.H{
		"Title":      "All Services",
		"Services":   search.Apply(ss.Data, local),
		"Error":      errorText(ss.Err, "Failed to load services"),
		"Categories": cs.Data,
		"CategoryID": categoryID,
		"Term":       local.Term,
		"SortBy":     local.SortBy,
		"Sorts":      sortChoices,
	})
}

// Category GET /services/category/:slug
// Фильтр по тексту и сортировка выполняются локально над загруженным списком.
func (h *CatalogHandler) Category(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	slug := strings.TrimSpace(c.Param("slug"))

	services := fetch.CategoryServices(v.Client)

	var (
		category    *models.Category
		categoryErr error
		ss          fetch.Snapshot[string, []models.Service]
		g           errgroup.Group
	)
	g.Go(func() error {
		category, categoryErr = v.Client.CategoryBySlug(ctx, slug)
		return nil
	})
	g.Go(func() error {
		ss = services.Load(ctx, slug)
		return nil
	})
	_ = g.Wait()

	if apperror.IsNotFound(categoryErr) {
		_ = c.Error(apperror.New(apperror.ErrCodeNotFound, "Category not found"))
		return
	}

	title := slug
	if category != nil {
		title = category.Name
	}

	local := search.Local{Term: c.Query("q"), SortBy: c.Query("sortBy")}
	render(c, http.StatusOK, "category.html", gin.H{
		"Title":    title,
		"Slug":     slug,
		"Category": category,
		"Services": search.Apply(ss.Data, local),
		"Total":    len(ss.Data),
		"Error":    errorText(firstErr(ss.Err, categoryErr), "Failed to load services"),
		"Term":     local.Term,
		"SortBy":   local.SortBy,
		"Sorts":    sortChoices,
	})
}

// Service GET /services/:id
func (h *CatalogHandler) Service(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	service := fetch.Service(v.Client)

	var (
		snap    fetch.Snapshot[string, *models.Service]
		reviews []models.Review
		g       errgroup.Group
	)
	g.Go(func() error {
		snap = service.Load(ctx, id)
		return nil
	})
	g.Go(func() error {
		// Отзывы не обязательны для страницы
		reviews, _ = v.Client.ListReviews(ctx, id)
		return nil
	})
	_ = g.Wait()

	if snap.Err != nil {
		_ = c.Error(snap.Err)
		return
	}

	render(c, http.StatusOK, "service.html", gin.H{
		"Title":   snap.Data.Title,
		"Service": snap.Data,
		"Reviews": reviews,
		"Form":    validation.BookingForm{ServiceName: snap.Data.Title},
		"Today":   h.val.Today(),
	})
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
