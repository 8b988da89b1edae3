//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects once the burst is spent", func(t *testing.T) {
		limiter := NewLoginRateLimiter(config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 2})
		fixed := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return fixed }

		r := gin.New()
		r.POST("/auth/token", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for range 3 {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
			if w.Code == http.StatusTooManyRequests {
				assert.Equal(t, "1", w.Header().Get("Retry-After"))
			}
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		limiter := NewLoginRateLimiter(config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 1})
		fixed := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return fixed }

		assert.True(t, limiter.allow("10.0.0.1"))
		assert.False(t, limiter.allow("10.0.0.1"))
		assert.True(t, limiter.allow("10.0.0.2"))
	})

	t.Run("refills over time", func(t *testing.T) {
		limiter := NewLoginRateLimiter(config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 1})
		now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return now }

		require.True(t, limiter.allow("10.0.0.1"))
		require.False(t, limiter.allow("10.0.0.1"))

		now = now.Add(time.Second)
		assert.True(t, limiter.allow("10.0.0.1"))
	})

	t.Run("forgets idle clients", func(t *testing.T) {
		limiter := NewLoginRateLimiter(config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 1})
		now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return now }

		limiter.allow("10.0.0.1")
		now = now.Add(limiterIdleTTL + time.Minute)
		limiter.allow("10.0.0.2")

		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		assert.NotContains(t, limiter.visitors, "10.0.0.1")
		assert.Contains(t, limiter.visitors, "10.0.0.2")
	})
}
