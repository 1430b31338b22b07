package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/ignatzorin/homeservices-portal/internal/config"
	"github.com/ignatzorin/homeservices-portal/internal/http/handlers"
	"github.com/ignatzorin/homeservices-portal/internal/http/middleware"
	"github.com/ignatzorin/homeservices-portal/internal/session"
)

// Handlers — все хэндлеры портала.
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Booking *handlers.BookingHandler
	Auth    *handlers.AuthHandler
	Contact *handlers.ContactHandler
	Search  *handlers.SearchHandler
	Admin   *handlers.AdminHandler
	Media   *handlers.MediaHandler
	Health  *handlers.HealthHandler
}

func SetupRouter(cfg *config.Config, registry *session.Registry, views render.HTMLRender, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.HTMLRender = views
	r.Use(middleware.ErrorHandler())

	r.GET("/health", h.Health.Health)
	if h.Media != nil {
		r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))
	}

	site := r.Group("/")
	site.Use(middleware.Visitor(registry, middleware.VisitorOptions{
		CookieName: cfg.SessionCookie,
		MaxAge:     cfg.SessionIdleTTL,
		Secure:     cfg.CookieSecure,
	}))

	// Отправки форм ограничены по частоте
	formLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	site.GET("/", h.Catalog.Home)
	site.GET("/services", h.Catalog.Services)
	site.GET("/services/:id", h.Catalog.Service)
	site.GET("/services/category/:slug", h.Catalog.Category)

	site.GET("/book", h.Booking.Form)
	site.POST("/bookings", formLimit, h.Booking.Create)

	site.GET("/search", h.Search.Page)
	site.POST("/search/retry", h.Search.Retry)

	site.GET("/contact", h.Contact.Page)
	site.POST("/contact", formLimit, h.Contact.Submit)

	site.GET("/login", h.Auth.LoginPage)
	site.POST("/login", formLimit, h.Auth.Login)
	site.GET("/register", h.Auth.RegisterPage)
	site.POST("/register", formLimit, h.Auth.Register)
	site.POST("/logout", h.Auth.Logout)

	api := site.Group("/api")
	api.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	{
		api.GET("/search/suggestions", h.Search.Suggestions)
		api.GET("/search/popular", h.Search.Popular)
	}

	site.GET("/admin/login", h.Auth.AdminLoginPage)
	site.POST("/admin/login", formLimit, h.Auth.AdminLogin)
	site.POST("/admin/logout", h.Auth.Logout)

	adm := site.Group("/admin")
	adm.Use(middleware.RequireAdmin("/admin/login"))
	{
		adm.GET("", h.Admin.Dashboard)
		h.Admin.MountModals(adm)

		adm.GET("/bookings", h.Admin.Bookings)
		adm.POST("/bookings", h.Admin.SaveBooking)
		adm.POST("/bookings/status/:id", h.Admin.UpdateBookingStatus)
		adm.POST("/bookings/delete", h.Admin.DeleteBooking)

		adm.GET("/categories", h.Admin.Categories)
		adm.POST("/categories", h.Admin.SaveCategory)
		adm.POST("/categories/delete", h.Admin.DeleteCategory)

		adm.GET("/services", h.Admin.Services)
		adm.POST("/services", h.Admin.SaveService)
		adm.POST("/services/delete", h.Admin.DeleteService)

		adm.GET("/reviews", h.Admin.Reviews)
		adm.POST("/reviews/delete", h.Admin.DeleteReview)

		adm.GET("/messages", h.Admin.Messages)
		adm.POST("/messages/read/:id", h.Admin.MarkMessageRead)
		adm.POST("/messages/delete", h.Admin.DeleteMessage)

		adm.GET("/users", h.Admin.Users)
		adm.POST("/users", h.Admin.SaveUser)
		adm.POST("/users/delete", h.Admin.DeleteUser)

		adm.GET("/data", h.Admin.DataPage)
		adm.POST("/data/:target", h.Admin.Seed)

		if h.Media != nil {
			adm.POST("/uploads", h.Media.Upload)
			adm.POST("/uploads/delete", h.Media.Delete)
		}
	}

	return r
}
