package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/services"
)

// LoginRateLimiter counts login attempts per client IP in Redis and rejects
// callers over the limit. When Redis is absent or unreachable the limiter
// degrades to allow.
func LoginRateLimiter(redis services.InterfaceRedisService, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redis == nil {
			c.Next()
			return
		}

		key := "login_attempts:" + c.ClientIP()
		count, err := redis.Incr(key, window)
		if err != nil {
			c.Next()
			return
		}

		if count > limit {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
