package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes one key=value line per HTTP request. Requests to skipPaths
// (probes, scrapes) are served without a log line.
func Logging(skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			if _, ok := skip[c.Request().URL.Path]; ok {
				return err
			}

			log.Printf("request_id=%s method=%s path=%s status=%d latency=%s user_id=%s remote_ip=%s",
				RequestIDFromContext(c),
				c.Request().Method,
				c.Request().URL.Path,
				c.Response().Status,
				latency,
				UserIDFromContext(c),
				c.RealIP(),
			)

			return err
		}
	}
}
