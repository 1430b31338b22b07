package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/homeservices-portal/internal/admin"
	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

// Bookings GET /admin/bookings?q=&status=
func (h *AdminHandler) Bookings(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	view := loadScreen(c, con.Bookings)
	h.renderBookings(c, http.StatusOK, view, bookingFormOf(view.Target))
}

func (h *AdminHandler) renderBookings(c *gin.Context, status int, view admin.View[models.Booking], form validation.AdminBookingForm) {
	term, filter := c.Query("q"), c.DefaultQuery("status", "all")
	render(c, status, "admin_bookings.html", gin.H{
		"Base":         "/admin/bookings",
		"Title":        "Bookings",
		"View":         view,
		"Items":        admin.FilterBookings(view.Items, term, filter),
		"Form":         form,
		"Term":         term,
		"StatusFilter": filter,
		"Statuses":     models.BookingStatuses,
		"StatusLabels": models.BookingStatusLabels,
		"Today":        h.val.Today(),
	})
}

// SaveBooking POST /admin/bookings
// Создание — полная форма; редактирование — только статус.
func (h *AdminHandler) SaveBooking(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	var form validation.AdminBookingForm
	_ = c.ShouldBind(&form)

	err := con.SaveBooking(c.Request.Context(), form, c.PostForm("status"))
	if formFailed(err) {
		h.renderBookings(c, statusOf(err), con.Bookings.View(), form)
		return
	}
	redirect(c, "/admin/bookings")
}

// UpdateBookingStatus POST /admin/bookings/status/:id
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	_ = con.UpdateBookingStatus(c.Request.Context(), c.Param("id"), c.PostForm("status"))
	redirect(c, "/admin/bookings")
}

// DeleteBooking POST /admin/bookings/delete
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	// Ошибка удаления показывается через alert списка
	_ = con.DeleteBooking(c.Request.Context())
	redirect(c, "/admin/bookings")
}

func bookingFormOf(b *models.Booking) validation.AdminBookingForm {
	if b == nil {
		return validation.AdminBookingForm{}
	}
	return validation.AdminBookingForm{
		ServiceName: b.ServiceName,
		Name:        b.Name,
		Mobile:      b.Mobile,
		Address:     b.Address,
		Date:        b.DateOnly(),
		Message:     deref(b.Message),
	}
}

// Categories GET /admin/categories?q=
func (h *AdminHandler) Categories(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	view := loadScreen(c, con.Categories)
	h.renderCategories(c, http.StatusOK, view, categoryFormOf(view.Target))
}

func (h *AdminHandler) renderCategories(c *gin.Context, status int, view admin.View[models.Category], form validation.CategoryForm) {
	term := c.Query("q")
	render(c, status, "admin_categories.html", gin.H{
		"Base":    "/admin/categories",
		"Title":   "Categories",
		"View":    view,
		"Items":   admin.FilterCategories(view.Items, term),
		"Parents": admin.ParentOptions(view.Items, view.TargetID),
		"Form":    form,
		"Term":    term,
	})
}

// SaveCategory POST /admin/categories
func (h *AdminHandler) SaveCategory(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	var form validation.CategoryForm
	_ = c.ShouldBind(&form)

	if err := con.SaveCategory(c.Request.Context(), form); formFailed(err) {
		h.renderCategories(c, statusOf(err), con.Categories.View(), form)
		return
	}
	redirect(c, "/admin/categories")
}

// DeleteCategory POST /admin/categories/delete
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	_ = con.DeleteCategory(c.Request.Context())
	redirect(c, "/admin/categories")
}

func categoryFormOf(cat *models.Category) validation.CategoryForm {
	if cat == nil {
		return validation.CategoryForm{IsActive: true}
	}
	return validation.CategoryForm{
		Name:        cat.Name,
		Slug:        cat.Slug,
		Description: deref(cat.Description),
		Icon:        deref(cat.Icon),
		Image:       deref(cat.Image),
		ParentID:    deref(cat.ParentID),
		IsActive:    cat.IsActive,
	}
}

// Services GET /admin/services?q=&category=
func (h *AdminHandler) Services(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	view := loadScreen(c, con.Services)
	h.renderServices(c, con, http.StatusOK, view, serviceFormOf(view.Target))
}

func (h *AdminHandler) renderServices(c *gin.Context, con *admin.Console, status int, view admin.View[models.Service], form validation.ServiceForm) {
	term, category := c.Query("q"), c.DefaultQuery("category", "all")

	// Категории нужны для фильтра и выбора в форме
	con.Categories.Load(c.Request.Context())

	render(c, status, "admin_services.html", gin.H{
		"Base":           "/admin/services",
		"Title":          "Services",
		"View":           view,
		"Items":          admin.FilterServices(view.Items, term, category),
		"Categories":     con.Categories.Items(),
		"Form":           form,
		"Term":           term,
		"CategoryFilter": category,
	})
}

// SaveService POST /admin/services
func (h *AdminHandler) SaveService(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	var form validation.ServiceForm
	_ = c.ShouldBind(&form)

	if err := con.SaveService(c.Request.Context(), form); formFailed(err) {
		h.renderServices(c, con, statusOf(err), con.Services.View(), form)
		return
	}
	redirect(c, "/admin/services")
}

// DeleteService POST /admin/services/delete
func (h *AdminHandler) DeleteService(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	_ = con.DeleteService(c.Request.Context())
	redirect(c, "/admin/services")
}

func serviceFormOf(s *models.Service) validation.ServiceForm {
	if s == nil {
		return validation.ServiceForm{IsActive: true, Features: []string{""}}
	}
	return validation.ServiceForm{
		Title:       s.Title,
		CategoryID:  s.CategoryID,
		Description: s.Description,
		Image:       s.Image,
		Price:       s.Price,
		Duration:    s.Duration,
		Features:    append([]string(nil), s.Features...),
		IsActive:    s.IsActive,
	}
}

// Reviews GET /admin/reviews?q=&rating=
func (h *AdminHandler) Reviews(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	view := loadScreen(c, con.Reviews)
	term, rating := c.Query("q"), c.DefaultQuery("rating", "all")

	render(c, http.StatusOK, "admin_reviews.html", gin.H{
		"Base":         "/admin/reviews",
		"Title":        "Reviews",
		"View":         view,
		"Items":        admin.FilterReviews(view.Items, term, rating),
		"Term":         term,
		"RatingFilter": rating,
		"Ratings":      []string{"5", "4", "3", "2", "1"},
	})
}

// DeleteReview POST /admin/reviews/delete
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	_ = con.DeleteReview(c.Request.Context())
	redirect(c, "/admin/reviews")
}

// Messages GET /admin/messages?q=&read=
func (h *AdminHandler) Messages(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	view := loadScreen(c, con.Messages)
	term, read := c.Query("q"), c.DefaultQuery("read", "all")

	render(c, http.StatusOK, "admin_messages.html", gin.H{
		"Base":       "/admin/messages",
		"Title":      "Messages",
		"View":       view,
		"Items":      admin.FilterMessages(view.Items, term, read),
		"Unread":     admin.UnreadCount(view.Items),
		"Term":       term,
		"ReadFilter": read,
	})
}

// MarkMessageRead POST /admin/messages/read/:id
func (h *AdminHandler) MarkMessageRead(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	_ = con.MarkMessageRead(c.Request.Context(), c.Param("id"))
	redirect(c, "/admin/messages")
}

// DeleteMessage POST /admin/messages/delete
func (h *AdminHandler) DeleteMessage(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	_ = con.DeleteMessage(c.Request.Context())
	redirect(c, "/admin/messages")
}

// Users GET /admin/users?q=&role=
func (h *AdminHandler) Users(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	view := loadScreen(c, con.Users)
	h.renderUsers(c, http.StatusOK, view, userFormOf(view.Target))
}

func (h *AdminHandler) renderUsers(c *gin.Context, status int, view admin.View[models.User], form validation.UserForm) {
	term, role := c.Query("q"), c.DefaultQuery("role", "all")
	form.Password = ""
	render(c, status, "admin_users.html", gin.H{
		"Base":       "/admin/users",
		"Title":      "Users",
		"View":       view,
		"Items":      admin.FilterUsers(view.Items, term, role),
		"Form":       form,
		"Term":       term,
		"RoleFilter": role,
		"Roles":      []string{models.RoleUser, models.RoleAdmin},
		"MinLength":  strconv.Itoa(validation.MinPasswordLength),
	})
}

// SaveUser POST /admin/users
func (h *AdminHandler) SaveUser(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	var form validation.UserForm
	_ = c.ShouldBind(&form)

	if err := con.SaveUser(c.Request.Context(), form); formFailed(err) {
		h.renderUsers(c, statusOf(err), con.Users.View(), form)
		return
	}
	redirect(c, "/admin/users")
}

// DeleteUser POST /admin/users/delete
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	con, ok := h.console(c)
	if !ok {
		return
	}
	_ = con.DeleteUser(c.Request.Context())
	redirect(c, "/admin/users")
}

func userFormOf(u *models.User) validation.UserForm {
	if u == nil {
		return validation.UserForm{Role: models.RoleUser, IsActive: true}
	}
	return validation.UserForm{
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
