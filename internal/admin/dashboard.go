package admin

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// Dashboard — данные главной страницы админки.
type Dashboard struct {
	Stats    *models.DashboardStats
	Activity *models.DashboardActivity
}

// Dashboard загружает статистику и активность параллельно.
func (c *Console) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := c.api.DashboardStats(gctx)
		d.Stats = stats
		return err
	})
	g.Go(func() error {
		activity, err := c.api.DashboardActivity(gctx)
		d.Activity = activity
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// SeedTarget — набор демо-данных на странице данных.
type SeedTarget struct {
	Endpoint    string
	Name        string
	Description string
}

// SeedTargets перечисляет наборы в порядке показа.
var SeedTargets = []SeedTarget{
	{Endpoint: "all", Name: "All Data", Description: "Seed all tables with comprehensive dummy data"},
	{Endpoint: "users", Name: "Users", Description: "Seed users table with admin and customer accounts"},
	{Endpoint: "categories", Name: "Categories", Description: "Seed categories and subcategories"},
	{Endpoint: "services", Name: "Services", Description: "Seed services across all categories"},
	{Endpoint: "bookings", Name: "Bookings", Description: "Seed booking data with various statuses"},
	{Endpoint: "reviews", Name: "Reviews", Description: "Seed customer reviews and ratings"},
	{Endpoint: "contacts", Name: "Contacts", Description: "Seed contact form submissions"},
}

// Seed заполняет набор и возвращает сообщение для пользователя.
func (c *Console) Seed(ctx context.Context, endpoint string) (string, bool) {
	var target *SeedTarget
	for i := range SeedTargets {
		if SeedTargets[i].Endpoint == endpoint {
			target = &SeedTargets[i]
			break
		}
	}
	if target == nil {
		return "Unknown data set", false
	}

	if _, err := c.api.Seed(ctx, target.Endpoint); err != nil {
		return "Failed to seed " + target.Name, false
	}
	return target.Name + " seeded successfully!", true
}
