package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sens-hq/user-service/internal/api/metrics"
	"github.com/sens-hq/user-service/internal/core/ports"
)

// RateLimit throttles requests per client IP and path within a fixed window.
// Store failures fail open: a degraded Redis must not lock everyone out of
// login.
func RateLimit(store ports.RateLimitStore, max int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if max <= 0 {
				return next(c)
			}

			key := "ratelimit:" + c.RealIP() + ":" + c.Path()
			n, err := store.Incr(c.Request().Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limit store unavailable")
				return next(c)
			}

			if n > max {
				metrics.RateLimitRejectedTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many requests, please try again later",
				})
			}

			return next(c)
		}
	}
}
