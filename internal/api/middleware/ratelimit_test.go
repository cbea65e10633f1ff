package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pmo-dashboard/internal/pkg/config"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	limiter := newRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.allow("10.0.0.1")
		assert.True(t, allowed)
	}

	allowed, remaining := limiter.allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// 不同IP独立计数
	allowed, _ = limiter.allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := newRateLimiter(50*time.Millisecond, 1)

	allowed, _ := limiter.allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = limiter.allow("10.0.0.1")
	assert.False(t, allowed)

	time.Sleep(60 * time.Millisecond)

	// 窗口过期后计数重置
	allowed, _ = limiter.allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(&config.RateLimitConfig{
		Enabled:       true,
		WindowSeconds: 60,
		MaxRequests:   2,
	}))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(&config.RateLimitConfig{Enabled: false, MaxRequests: 1}))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
