package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
)

// TooManyRequestsMessage показывается, когда лимит отправок формы исчерпан.
const TooManyRequestsMessage = "Too many requests. Please try again later."

// RateLimitMiddleware ограничивает число отправок форм (бронирование, контакты, вход).
// Ключ — посетитель, а при его отсутствии IP.
// По умолчанию: 10 запросов в минуту.
func RateLimitMiddleware(limit int64, period time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 10
	}
	if period <= 0 {
		period = 1 * time.Minute
	}

	rate := limiter.Rate{
		Period: period,
		Limit:  limit,
	}
	instance := limiter.New(memory.NewStore(), rate)

	return func(c *gin.Context) {
		key := c.ClientIP()
		if v, ok := CurrentVisitor(c); ok {
			key = v.ID
		}

		lctx, err := instance.Get(c, key)
		if err != nil {
			logger.With("http").WithError(err).Error("rate limiter недоступен")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			c.String(http.StatusTooManyRequests, TooManyRequestsMessage)
			c.Abort()
			return
		}

		c.Next()
	}
}
