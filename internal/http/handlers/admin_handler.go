package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/homeservices-portal/internal/admin"
	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

// AdminHandler — страницы админки. Состояние экранов (модальные окна,
// одноразовые сообщения) живёт в admin.Console посетителя; после каждого
// действия выполняется редирект на список (POST-redirect-GET), кроме
// ошибок формы: тогда список рендерится сразу с введёнными данными.
type AdminHandler struct {
	val *validation.Validator
}

func NewAdminHandler(val *validation.Validator) *AdminHandler {
	return &AdminHandler{val: val}
}

func (h *AdminHandler) console(c *gin.Context) (*admin.Console, bool) {
	v, ok := mustVisitor(c)
	if !ok {
		return nil, false
	}
	return consoleOf(v, h.val), true
}

func pickBookings(con *admin.Console) *admin.Screen[models.Booking]    { return con.Bookings }
func pickCategories(con *admin.Console) *admin.Screen[models.Category] { return con.Categories }
func pickServices(con *admin.Console) *admin.Screen[models.Service]    { return con.Services }
func pickReviews(con *admin.Console) *admin.Screen[models.Review]      { return con.Reviews }
func pickMessages(con *admin.Console) *admin.Screen[models.Contact]    { return con.Messages }
func pickUsers(con *admin.Console) *admin.Screen[models.User]          { return con.Users }

// mountModal регистрирует переходы модального окна экрана:
// base/new, base/edit/:id, base/delete/:id, base/close.
// pick выбирает экран ресурса в консоли.
func mountModal[T any](g *gin.RouterGroup, h *AdminHandler, base string, pick func(con *admin.Console) *admin.Screen[T]) {
	do := func(action func(s *admin.Screen[T], c *gin.Context)) gin.HandlerFunc {
		return func(c *gin.Context) {
			con, ok := h.console(c)
			if !ok {
				return
			}
			action(pick(con), c)
			redirect(c, "/admin/"+base)
		}
	}

	g.GET("/"+base+"/new", do(func(s *admin.Screen[T], _ *gin.Context) { s.OpenCreate() }))
	g.GET("/"+base+"/edit/:id", do(func(s *admin.Screen[T], c *gin.Context) { s.OpenEdit(c.Param("id")) }))
	g.GET("/"+base+"/delete/:id", do(func(s *admin.Screen[T], c *gin.Context) { s.AskDelete(c.Param("id")) }))
	g.GET("/"+base+"/close", do(func(s *admin.Screen[T], _ *gin.Context) { s.Close() }))
}

// MountModals регистрирует модальные переходы всех экранов админки.
func (h *AdminHandler) MountModals(g *gin.RouterGroup) {
	mountModal(g, h, "bookings", pickBookings)
	mountModal(g, h, "categories", pickCategories)
	mountModal(g, h, "services", pickServices)
	mountModal(g, h, "reviews", pickReviews)
	mountModal(g, h, "messages", pickMessages)
	mountModal(g, h, "users", pickUsers)
}

// loadScreen загружает список экрана. ?reload=1 принудительно перезагружает его.
func loadScreen[T any](c *gin.Context, s *admin.Screen[T]) admin.View[T] {
	if c.Query("reload") != "" {
		s.Refetch(c.Request.Context())
	} else {
		s.Load(c.Request.Context())
	}
	return s.View()
}

// formFailed сообщает, что форму нужно показать снова с ошибкой.
// Отправка уже закрытой формы уходит редиректом на список, где виден alert.
func formFailed(err error) bool {
	return err != nil && !errors.Is(err, admin.ErrFormClosed)
}

func statusOf(err error) int {
	if err != nil {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

// Dashboard GET /admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}

	d, err := con.Dashboard(c.Request.Context())
	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Title":        "Dashboard",
		"Dashboard":    d,
		"Error":        errorText(err, "Failed to load dashboard"),
		"StatusLabels": models.BookingStatusLabels,
	})
}

// DataPage GET /admin/data
func (h *AdminHandler) DataPage(c *gin.Context) {
	render(c, http.StatusOK, "admin_data.html", gin.H{"Title": "Data Management", "Targets": admin.SeedTargets})
}

// Seed POST /admin/data/:target
func (h *AdminHandler) Seed(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}

	msg, success := con.Seed(c.Request.Context(), c.Param("target"))
	status := http.StatusOK
	if !success {
		status = http.StatusBadGateway
	}
	render(c, status, "admin_data.html", gin.H{
		"Title":   "Data Management",
		"Targets": admin.SeedTargets,
		"Message": msg,
		"Success": success,
	})
}
