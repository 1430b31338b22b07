package admin

import (
	"context"
	"strings"

	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

// API — методы apiclient.Client, которые использует админка.
type API interface {
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	CategoriesHierarchy(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, in models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListServices(ctx context.Context, categoryID string) ([]models.Service, error)
	CreateService(ctx context.Context, in models.ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, id string, in models.ServiceInput) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListReviews(ctx context.Context, serviceID string) ([]models.Review, error)
	DeleteReview(ctx context.Context, id string) error

	ListContacts(ctx context.Context) ([]models.Contact, error)
	MarkContactRead(ctx context.Context, id string) (*models.Contact, error)
	DeleteContact(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]models.User, error)
	Register(ctx context.Context, in models.RegisterInput) (*models.AuthResponse, error)
	UpdateUser(ctx context.Context, id string, in models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	DashboardActivity(ctx context.Context) (*models.DashboardActivity, error)
	Seed(ctx context.Context, target string) (*models.MessageResponse, error)
}

// Console — админка одного посетителя: по экрану на ресурс.
type Console struct {
	api API
	val *validation.Validator

	Bookings   *Screen[models.Booking]
	Categories *Screen[models.Category]
	Services   *Screen[models.Service]
	Reviews    *Screen[models.Review]
	Messages   *Screen[models.Contact]
	Users      *Screen[models.User]
}

func NewConsole(api API, val *validation.Validator) *Console {
	return &Console{
		api: api,
		val: val,
		Bookings: NewScreen("bookings", api.ListAllBookings, func(items []models.Booking, id string) (models.Booking, bool) {
			return findBy(items, id, func(b models.Booking) string { return b.ID })
		}),
		Categories: NewScreen("categories", api.CategoriesHierarchy, FindCategory),
		Services: NewScreen("services", func(ctx context.Context) ([]models.Service, error) {
			return api.ListServices(ctx, "")
		}, func(items []models.Service, id string) (models.Service, bool) {
			return findBy(items, id, func(s models.Service) string { return s.ID })
		}),
		Reviews: NewScreen("reviews", func(ctx context.Context) ([]models.Review, error) {
			return api.ListReviews(ctx, "")
		}, func(items []models.Review, id string) (models.Review, bool) {
			return findBy(items, id, func(r models.Review) string { return r.ID })
		}),
		Messages: NewScreen("messages", api.ListContacts, func(items []models.Contact, id string) (models.Contact, bool) {
			return findBy(items, id, func(c models.Contact) string { return c.ID })
		}),
		Users: NewScreen("users", api.ListUsers, func(items []models.User, id string) (models.User, bool) {
			return findBy(items, id, func(u models.User) string { return u.ID })
		}),
	}
}

func findBy[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindCategory ищет категорию среди корней и их детей.
func FindCategory(items []models.Category, id string) (models.Category, bool) {
	for _, root := range items {
		if root.ID == id {
			return root, true
		}
		for _, child := range root.Children {
			if child.ID == id {
				return child, true
			}
		}
	}
	return models.Category{}, false
}

func validationError(msg string) error {
	return apperror.New(apperror.ErrCodeValidation, msg)
}

// SaveBooking — создание бронирования. Редактирование бронирования сводится
// к смене статуса (UpdateBookingStatus): других изменяемых полей у API нет.
func (c *Console) SaveBooking(ctx context.Context, form validation.AdminBookingForm, status string) error {
	return c.Bookings.Submit(ctx, form.ID, func(ctx context.Context, targetID string) error {
		if targetID != "" {
			if !models.IsValidBookingStatus(status) {
				return validationError("Please select a valid status")
			}
			_, err := c.api.UpdateBookingStatus(ctx, targetID, status)
			return err
		}

		if msg := c.val.AdminBooking(form); msg != "" {
			return validationError(msg)
		}
		_, err := c.api.CreateBooking(ctx, form.Input())
		return err
	})
}

// UpdateBookingStatus меняет статус прямо из списка.
func (c *Console) UpdateBookingStatus(ctx context.Context, id, status string) error {
	return c.Bookings.Mutate(ctx, func(ctx context.Context) error {
		if !models.IsValidBookingStatus(status) {
			return validationError("Please select a valid status")
		}
		_, err := c.api.UpdateBookingStatus(ctx, id, status)
		return err
	}, "Failed to update booking status")
}

func (c *Console) DeleteBooking(ctx context.Context) error {
	return c.Bookings.ConfirmDelete(ctx, c.api.DeleteBooking, "Failed to delete booking")
}

func (c *Console) SaveCategory(ctx context.Context, form validation.CategoryForm) error {
	return c.Categories.Submit(ctx, form.ID, func(ctx context.Context, targetID string) error {
		if strings.TrimSpace(form.Slug) == "" {
			form.Slug = validation.Slugify(form.Name)
		}
		if msg := c.val.Category(form); msg != "" {
			return validationError(msg)
		}
		if targetID != "" && form.ParentID == targetID {
			return validationError("A category cannot be its own parent")
		}

		in := categoryInput(form)
		if targetID == "" {
			_, err := c.api.CreateCategory(ctx, in)
			return err
		}
		_, err := c.api.UpdateCategory(ctx, targetID, in)
		return err
	})
}

func categoryInput(form validation.CategoryForm) models.CategoryInput {
	active := form.IsActive
	in := models.CategoryInput{
		Name:     strings.TrimSpace(form.Name),
		Slug:     strings.TrimSpace(form.Slug),
		IsActive: &active,
	}
	in.Description = optional(form.Description)
	in.Icon = optional(form.Icon)
	in.Image = optional(form.Image)
	in.ParentID = optional(form.ParentID)
	return in
}

func (c *Console) DeleteCategory(ctx context.Context) error {
	return c.Categories.ConfirmDelete(ctx, c.api.DeleteCategory, "Failed to delete category")
}

func (c *Console) SaveService(ctx context.Context, form validation.ServiceForm) error {
	return c.Services.Submit(ctx, form.ID, func(ctx context.Context, targetID string) error {
		if msg := c.val.Service(form); msg != "" {
			return validationError(msg)
		}

		in := serviceInput(form)
		if targetID == "" {
			_, err := c.api.CreateService(ctx, in)
			return err
		}
		_, err := c.api.UpdateService(ctx, targetID, in)
		return err
	})
}

// serviceInput убирает пустые пункты features, как форма услуги.
func serviceInput(form validation.ServiceForm) models.ServiceInput {
	features := make([]string, 0, len(form.Features))
	for _, f := range form.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	active := form.IsActive
	return models.ServiceInput{
		Title:       strings.TrimSpace(form.Title),
		CategoryID:  form.CategoryID,
		Description: strings.TrimSpace(form.Description),
		Image:       strings.TrimSpace(form.Image),
		Price:       strings.TrimSpace(form.Price),
		Duration:    strings.TrimSpace(form.Duration),
		Features:    features,
		IsActive:    &active,
	}
}

func (c *Console) DeleteService(ctx context.Context) error {
	return c.Services.ConfirmDelete(ctx, c.api.DeleteService, "Failed to delete service")
}

func (c *Console) DeleteReview(ctx context.Context) error {
	return c.Reviews.ConfirmDelete(ctx, c.api.DeleteReview, "Failed to delete review")
}

// MarkMessageRead отмечает сообщение прочитанным и перезагружает список.
func (c *Console) MarkMessageRead(ctx context.Context, id string) error {
	return c.Messages.Mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.MarkContactRead(ctx, id)
		return err
	}, "Failed to mark message as read")
}

func (c *Console) DeleteMessage(ctx context.Context) error {
	return c.Messages.ConfirmDelete(ctx, c.api.DeleteContact, "Failed to delete message")
}

// SaveUser создаёт пользователя через регистрацию с ролью либо обновляет его.
// При редактировании пустой пароль не отправляется.
func (c *Console) SaveUser(ctx context.Context, form validation.UserForm) error {
	return c.Users.Submit(ctx, form.ID, func(ctx context.Context, targetID string) error {
		creating := targetID == ""
		if msg := c.val.User(form, creating); msg != "" {
			return validationError(msg)
		}

		if creating {
			_, err := c.api.Register(ctx, models.RegisterInput{
				Email:    strings.TrimSpace(form.Email),
				Password: form.Password,
				Name:     strings.TrimSpace(form.Name),
				Phone:    strings.TrimSpace(form.Phone),
				Role:     form.Role,
			})
			return err
		}

		_, err := c.api.UpdateUser(ctx, targetID, userUpdate(form))
		return err
	})
}

func userUpdate(form validation.UserForm) models.UserUpdate {
	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	phone := strings.TrimSpace(form.Phone)
	role := form.Role
	active := form.IsActive

	upd := models.UserUpdate{Name: &name, Email: &email, Phone: &phone, Role: &role, IsActive: &active}
	if form.Password != "" {
		password := form.Password
		upd.Password = &password
	}
	return upd
}

func (c *Console) DeleteUser(ctx context.Context) error {
	return c.Users.ConfirmDelete(ctx, c.api.DeleteUser, "Failed to delete user")
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
