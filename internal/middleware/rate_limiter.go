package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter counts hits per key inside a sliding window. Keys are client
// IPs for the global limiter and owner ids for the per-session one.
type RateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}

	go rl.sweep()

	return rl
}

// sweep drops keys whose every hit fell out of the window, so idle clients
// do not pin memory forever.
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.window)
		for key, stamps := range rl.hits {
			if live := prune(stamps, cutoff); len(live) == 0 {
				delete(rl.hits, key)
			} else {
				rl.hits[key] = live
			}
		}
		rl.mu.Unlock()
	}
}

// prune keeps only the timestamps after cutoff, reusing the backing array.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	live := stamps[:0]
	for _, t := range stamps {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}
	return live
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	live := prune(rl.hits[key], now.Add(-rl.window))

	if len(live) >= rl.limit {
		rl.hits[key] = live
		return false
	}

	rl.hits[key] = append(live, now)
	return true
}

func rejectThrottled(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":   "RATE_LIMIT_EXCEEDED",
		"message": "Demasiadas solicitudes. Inténtalo de nuevo en unos minutos.",
	})
	c.Abort()
}

// RateLimit throttles by client IP before identity is resolved.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			rejectThrottled(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser keys on the authenticated identity when present and falls
// back to the client IP for anonymous requests.
func RateLimitByUser() gin.HandlerFunc {
	limiter := NewRateLimiter(100, time.Minute)

	return func(c *gin.Context) {
		key := c.ClientIP()
		if id, ok := c.Get("user_id"); ok {
			if s, ok := id.(string); ok {
				key = s
			}
		}

		if !limiter.Allow(key) {
			rejectThrottled(c)
			return
		}
		c.Next()
	}
}
