package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubRedis counts Incr calls in memory
type stubRedis struct {
	count int64
	err   error
}

func (s *stubRedis) Set(string, interface{}, time.Duration) error { return nil }
func (s *stubRedis) Get(string, interface{}) error                { return nil }
func (s *stubRedis) Delete(string) error                          { return nil }
func (s *stubRedis) Ping() error                                  { return nil }

func (s *stubRedis) Incr(string, time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.count++
	return s.count, nil
}

func newRateLimitRouter(limiter gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", limiter, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLoginRateLimiterBlocksOverLimit(t *testing.T) {
	r := newRateLimitRouter(LoginRateLimiter(&stubRedis{}, 3, time.Minute))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestLoginRateLimiterAllowsWithoutRedis(t *testing.T) {
	r := newRateLimitRouter(LoginRateLimiter(nil, 1, time.Minute))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(r))
	}
}

func TestLoginRateLimiterDegradesOnRedisError(t *testing.T) {
	r := newRateLimitRouter(LoginRateLimiter(&stubRedis{err: assert.AnError}, 1, time.Minute))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(r))
	}
}
