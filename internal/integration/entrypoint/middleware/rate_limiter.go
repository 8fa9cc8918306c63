package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// RateLimiter limits requests per client IP using a fixed window counter.
// It guards the auth endpoints against credential stuffing; the API proper
// is not rate limited.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	limiter := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go limiter.cleanup()
	return limiter
}

// Middleware returns the gin handler enforcing the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "too many requests, try again later",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	recent := rl.requests[clientIP][:0]
	for _, at := range rl.requests[clientIP] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	if len(recent) >= rl.limit {
		rl.requests[clientIP] = recent
		return false
	}
	rl.requests[clientIP] = append(recent, now)
	return true
}

// cleanup drops idle client entries so the map does not grow unbounded.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.window)
		for clientIP, times := range rl.requests {
			if len(times) == 0 || !times[len(times)-1].After(cutoff) {
				delete(rl.requests, clientIP)
			}
		}
		rl.mu.Unlock()
	}
}
