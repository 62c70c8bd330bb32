package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/octobees/vendor-matching/internal/config"
)

const limiterIdleTTL = 10 * time.Minute

type callerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// callerLimiters hands out one token bucket per caller key.
type callerLimiters struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*callerLimiter
	lastGC   time.Time
	now      func() time.Time
}

func (l *callerLimiters) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastGC) > limiterIdleTTL {
		for k, entry := range l.limiters {
			if now.Sub(entry.lastSeen) > limiterIdleTTL {
				delete(l.limiters, k)
			}
		}
		l.lastGC = now
	}

	entry, ok := l.limiters[key]
	if !ok {
		entry = &callerLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// MatchRateLimiter applies a token bucket per caller to the routes it wraps.
// Callers are keyed by authenticated user id, or by client IP before auth.
// A zero config disables limiting.
func MatchRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	return newMatchRateLimiter(cfg, time.Now)
}

func newMatchRateLimiter(cfg config.RateLimitConfig, now func() time.Time) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiters := &callerLimiters{
		limit:    rate.Every(perRequest),
		burst:    cfg.Requests,
		limiters: make(map[string]*callerLimiter),
		lastGC:   now(),
		now:      now,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := UserIDFromContext(c)
			if key == "" {
				key = "ip:" + c.RealIP()
			}

			if !limiters.allow(key) {
				c.Response().Header().Set("Retry-After", retryAfterSeconds(perRequest))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "match rate limit exceeded"})
			}

			return next(c)
		}
	}
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
