package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
)

// ErrorPage — имя шаблона страницы ошибки.
const ErrorPage = "error.html"

// ErrorHandler обрабатывает ошибки, накопленные хэндлерами через c.Error.
// Сообщения AppError показываются как есть, прочие ошибки маскируются.
// JSON отдаётся клиентам, которые его просят, остальным — HTML страница.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Ответ уже отправлен хэндлером
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.StatusOf(err)
		message := apperror.MessageOf(err, "Something went wrong. Please try again.")

		entry := logger.L().WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": status,
		})
		if status >= http.StatusInternalServerError {
			entry.Error("ошибка запроса")
		} else {
			entry.Warn("ошибка запроса")
		}

		if wantsJSON(c) {
			c.JSON(status, gin.H{"error": message})
			return
		}
		c.HTML(status, ErrorPage, gin.H{"Status": status, "Message": message})
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/") ||
		strings.Contains(c.GetHeader("Accept"), "application/json")
}
