package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/session"
)

// ContextVisitorKey — ключ посетителя в gin.Context.
const ContextVisitorKey = "visitor"

// VisitorOptions — параметры cookie посетителя.
type VisitorOptions struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Visitor находит посетителя по cookie (или выдаёт новый id) и
// инициализирует его сессию. Init идемпотентен: профиль запрашивается
// только при первом обращении.
func Visitor(registry *session.Registry, opts VisitorOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(opts.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		// Продлеваем cookie на каждом запросе
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, id, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)

		v := registry.Get(id)
		if err := v.Session.Init(c.Request.Context()); err != nil {
			logger.With("http").WithField("visitor", id).WithError(err).Warn("не удалось восстановить сессию")
		}

		c.Set(ContextVisitorKey, v)
		c.Next()
	}
}

// CurrentVisitor возвращает посетителя текущего запроса.
func CurrentVisitor(c *gin.Context) (*session.Visitor, bool) {
	raw, exists := c.Get(ContextVisitorKey)
	if !exists {
		return nil, false
	}
	v, ok := raw.(*session.Visitor)
	return v, ok
}

// RequireAdmin пропускает только администраторов, остальных отправляет на loginPath.
func RequireAdmin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := CurrentVisitor(c)
		if !ok || !v.Session.IsAdmin() {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
