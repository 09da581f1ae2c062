package middleware

import (
	"strings"
	"sync"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// 5 req/sec per IP keeps brute-force login attempts unattractive
	defaultRPS   = 5
	defaultBurst = 10

	// Each refresh runs a full insight engine cycle over the user's
	// records, so the refresh endpoint gets a much smaller budget than
	// plain reads
	refreshRPS   = 1
	refreshBurst = 3

	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter tracks one token bucket per client IP. Each tier of the
// API gets its own instance with an independent visitors map.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	l := &ipRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
	go l.cleanupLoop()
	return l
}

// RateLimiter applies the default per-IP limit for the API surface
func RateLimiter() echo.MiddlewareFunc {
	return newIPRateLimiter(defaultRPS, defaultBurst).Middleware()
}

// RateLimiterWithConfig creates a rate limiter with custom limits
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	return newIPRateLimiter(float64(rps), burst).Middleware()
}

// RefreshRateLimiter guards the insight refresh endpoint
func RefreshRateLimiter() echo.MiddlewareFunc {
	return newIPRateLimiter(refreshRPS, refreshBurst).Middleware()
}

// Middleware rejects requests whose IP has exhausted its bucket
func (l *ipRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(getIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

// getIP prefers proxy headers; only the first X-Forwarded-For hop counts
func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}

func (l *ipRateLimiter) cleanupLoop() {
	for range time.Tick(cleanupInterval) {
		l.evictStale()
	}
}

func (l *ipRateLimiter) evictStale() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, v := range l.visitors {
		if time.Since(v.lastSeen) > visitorTTL {
			delete(l.visitors, ip)
		}
	}
}
