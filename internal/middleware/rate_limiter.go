package middleware

import (
	"net/http"
	"sync"
	"time"

	"sales-analytics/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 20
	defaultBurstSize         = 40

	visitorCleanupInterval = time.Minute
	visitorExpiry          = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter tracks one token bucket per client IP. Each instance carries
// its own configuration and visitor table, so routers with different limits
// do not interfere with each other.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	rps   rate.Limit
	burst int
}

// NewRateLimiter creates a per-IP rate limiter and starts its background
// visitor cleanup.
func NewRateLimiter(rps int, burst int) *RateLimiter {
	if rps < 1 {
		rps = defaultRequestsPerSecond
	}
	if burst < 1 {
		burst = defaultBurstSize
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	go rl.cleanupVisitors()

	return rl
}

// Middleware rejects requests above the configured per-IP rate with a
// 429 response
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(getIP(c)) {
				response := errors.NewErrorResponse(errors.SystemRateLimitExceeded, GetTraceID(c))
				return c.JSON(http.StatusTooManyRequests, response)
			}

			return next(c)
		}
	}
}

// RateLimiterWithConfig creates a rate limiting middleware with its own
// limiter instance
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	return NewRateLimiter(rps, burst).Middleware()
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func getIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		return xff
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(visitorCleanupInterval)

		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorExpiry {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
