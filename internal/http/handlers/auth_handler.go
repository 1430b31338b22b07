package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

// AccessDeniedMessage — вход в админку под учётной записью без роли admin.
const AccessDeniedMessage = "Access denied. Admin privileges required."

// AuthHandler — вход, регистрация и выход для сайта и админки.
type AuthHandler struct {
	val *validation.Validator
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(val *validation.Validator) *AuthHandler {
	return &AuthHandler{val: val}
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Sign In"})
}

// Login обрабатывает POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, "login.html", "/", false)
}

// AdminLoginPage GET /admin/login
func (h *AuthHandler) AdminLoginPage(c *gin.Context) {
	if v, ok := mustVisitor(c); ok && v.Session.IsAdmin() {
		redirect(c, "/admin")
		return
	}
	render(c, http.StatusOK, "admin_login.html", gin.H{"Title": "Admin Login"})
}

// AdminLogin обрабатывает POST /admin/login.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, "admin_login.html", "/admin", true)
}

func (h *AuthHandler) login(c *gin.Context, page, next string, adminOnly bool) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}

	var form validation.LoginForm
	_ = c.ShouldBind(&form)
	form.Email = strings.TrimSpace(form.Email)

	fail := func(status int, msg string) {
		render(c, status, page, gin.H{"Title": "Sign In", "Email": form.Email, "Error": msg})
	}

	if msg := h.val.Login(form); msg != "" {
		fail(http.StatusUnprocessableEntity, msg)
		return
	}

	user, err := v.Session.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		fail(apperror.StatusOf(err), apperror.MessageOf(err, "Login failed"))
		return
	}

	if adminOnly && !user.IsAdmin() {
		fail(http.StatusForbidden, AccessDeniedMessage)
		return
	}

	v.ResetComponents()
	redirect(c, next)
}

// RegisterPage GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Create Account", "Form": validation.RegisterForm{}})
}

// Register обрабатывает POST /register. Успешная регистрация сразу выполняет вход.
func (h *AuthHandler) Register(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}

	var form validation.RegisterForm
	_ = c.ShouldBind(&form)

	fail := func(status int, msg string) {
		form.Password, form.ConfirmPassword = "", ""
		render(c, status, "register.html", gin.H{"Title": "Create Account", "Form": form, "Error": msg})
	}

	if msg := h.val.Register(form); msg != "" {
		fail(http.StatusUnprocessableEntity, msg)
		return
	}

	_, err := v.Session.Register(c.Request.Context(), models.RegisterInput{
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
		Name:     strings.TrimSpace(form.Name),
		Phone:    strings.TrimSpace(form.Phone),
	})
	if err != nil {
		fail(apperror.StatusOf(err), apperror.MessageOf(err, "Registration failed"))
		return
	}

	v.ResetComponents()
	redirect(c, "/")
}

// Logout обрабатывает POST /logout и POST /admin/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}
	v.Session.Logout(c.Request.Context())
	v.ResetComponents()

	next := "/"
	if strings.HasPrefix(c.Request.URL.Path, "/admin") {
		next = "/admin/login"
	}
	redirect(c, next)
}
