package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/homeservices-portal/internal/admin"
	"github.com/ignatzorin/homeservices-portal/internal/http/middleware"
	"github.com/ignatzorin/homeservices-portal/internal/search"
	"github.com/ignatzorin/homeservices-portal/internal/session"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

var errNoVisitor = errors.New("посетитель не найден в контексте")

// visitorOf извлекает посетителя, установленного middleware.Visitor.
func visitorOf(c *gin.Context) (*session.Visitor, error) {
	v, ok := middleware.CurrentVisitor(c)
	if !ok {
		return nil, errNoVisitor
	}
	return v, nil
}

// mustVisitor как visitorOf, но при ошибке сам отвечает 500.
func mustVisitor(c *gin.Context) (*session.Visitor, bool) {
	v, err := visitorOf(c)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return nil, false
	}
	return v, true
}

// render добавляет к данным страницы текущего пользователя.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if v, ok := middleware.CurrentVisitor(c); ok {
		data["User"] = v.Session.User()
		data["IsAdmin"] = v.Session.IsAdmin()
	}
	data["Path"] = c.Request.URL.Path
	data["AdminArea"] = strings.HasPrefix(c.Request.URL.Path, "/admin") && c.Request.URL.Path != "/admin/login"
	c.HTML(status, name, data)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// searcherOf возвращает поиск посетителя; фильтры живут между запросами.
func searcherOf(v *session.Visitor) *search.Searcher {
	return session.Attach(v, "search", func() *search.Searcher {
		return search.NewSearcher(v.Client)
	})
}

// consoleOf возвращает админку посетителя.
func consoleOf(v *session.Visitor, val *validation.Validator) *admin.Console {
	return session.Attach(v, "admin", func() *admin.Console {
		return admin.NewConsole(v.Client, val)
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
