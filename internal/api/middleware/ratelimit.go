package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/pkg/config"
	pkgErrors "pmo-dashboard/pkg/errors"
	"pmo-dashboard/pkg/responses"
)

// ipWindow 单个IP的固定窗口计数
type ipWindow struct {
	count       int
	windowStart time.Time
}

// rateLimiter 按调用方IP的固定窗口限流器
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*ipWindow
	window  time.Duration
	max     int
}

func newRateLimiter(window time.Duration, max int) *rateLimiter {
	return &rateLimiter{
		windows: make(map[string]*ipWindow),
		window:  window,
		max:     max,
	}
}

// allow 判断本次请求是否放行, 返回窗口内剩余配额
func (l *rateLimiter) allow(ip string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[ip]
	if !ok || now.Sub(w.windowStart) >= l.window {
		l.windows[ip] = &ipWindow{count: 1, windowStart: now}
		return true, l.max - 1
	}

	if w.count >= l.max {
		return false, 0
	}
	w.count++
	return true, l.max - w.count
}

// cleanup 清理过期窗口, 防止IP映射无限增长
func (l *rateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for ip, w := range l.windows {
		if now.Sub(w.windowStart) >= l.window {
			delete(l.windows, ip)
		}
	}
}

// RateLimitMiddleware 限流中间件, 固定窗口按IP计数
func RateLimitMiddleware(cfg *config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := newRateLimiter(time.Duration(cfg.WindowSeconds)*time.Second, cfg.MaxRequests)

	go func() {
		ticker := time.NewTicker(limiter.window)
		defer ticker.Stop()
		for range ticker.C {
			limiter.cleanup()
		}
	}()

	return func(c *gin.Context) {
		allowed, remaining := limiter.allow(c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			responses.Error(c, pkgErrors.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
