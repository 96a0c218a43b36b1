package middleware

import (
	"net/http"
	"sync"
	"time"

	"keso/internal/apierror"

	"github.com/gin-gonic/gin"
)

// slidingLimiter tracks request counts per IP within a fixed window.
type slidingLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   int
	window  time.Duration
}

type limiterEntry struct {
	count     int
	windowEnd time.Time
}

func newSlidingLimiter(limit int, window time.Duration) *slidingLimiter {
	l := &slidingLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   limit,
		window:  window,
	}
	go l.purgeLoop()
	return l
}

// allow counts one request for ip and reports whether it is within the limit.
func (l *slidingLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &limiterEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit
}

// purgeLoop evicts expired entries so IPs that never return don't leak.
func (l *slidingLimiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, entry := range l.entries {
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimiter returns a general-purpose per-IP limiter for the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingLimiter(limit, window)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP, blunting
// credential stuffing against the single-store user base.
func LoginRateLimiter() gin.HandlerFunc {
	limiter := newSlidingLimiter(20, time.Minute)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}
