package fetch

import (
	"context"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// None — ключ ресурсов без параметров.
type None struct{}

// CatalogAPI — чтение каталога через apiclient.Client.
type CatalogAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CategoriesHierarchy(ctx context.Context) ([]models.Category, error)
	FeaturedServices(ctx context.Context) ([]models.Service, error)
	PopularServices(ctx context.Context) ([]models.Service, error)
	ListServices(ctx context.Context, categoryID string) ([]models.Service, error)
	ServicesByCategory(ctx context.Context, slug string) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
}

func Categories(api CatalogAPI) *Resource[None, []models.Category] {
	return New("categories", func(ctx context.Context, _ None) ([]models.Category, error) {
		return api.ListCategories(ctx)
	})
}

func CategoriesHierarchy(api CatalogAPI) *Resource[None, []models.Category] {
	return New("categories_hierarchy", func(ctx context.Context, _ None) ([]models.Category, error) {
		return api.CategoriesHierarchy(ctx)
	})
}

func FeaturedServices(api CatalogAPI) *Resource[None, []models.Service] {
	return New("featured_services", func(ctx context.Context, _ None) ([]models.Service, error) {
		return api.FeaturedServices(ctx)
	})
}

func PopularServices(api CatalogAPI) *Resource[None, []models.Service] {
	return New("popular_services", func(ctx context.Context, _ None) ([]models.Service, error) {
		return api.PopularServices(ctx)
	})
}

// Services загружает услуги по categoryId (пустой — все услуги).
func Services(api CatalogAPI) *Resource[string, []models.Service] {
	return New[string, []models.Service]("services", api.ListServices)
}

// CategoryServices загружает услуги категории по slug.
func CategoryServices(api CatalogAPI) *Resource[string, []models.Service] {
	return New[string, []models.Service]("category_services", api.ServicesByCategory)
}

func Service(api CatalogAPI) *Resource[string, *models.Service] {
	return New[string, *models.Service]("service", api.GetService)
}
