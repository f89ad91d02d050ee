package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sens-hq/user-service/internal/api/metrics"
	"github.com/sens-hq/user-service/internal/core/domain"
	"github.com/sens-hq/user-service/internal/core/ports"
)

// Context keys set by Auth after successful verification. Together they form
// the request-scoped auth context read by RequireRole and the handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth validates the bearer token and injects the decoded identity into the
// echo context. Expired and invalid tokens are distinguished in logs and
// metrics only; the client sees one uniform 401 message for both.
func Auth(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				result := "invalid"
				if errors.Is(err, domain.ErrExpiredToken) {
					result = "expired"
				}
				metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()
				log.Debug().
					Err(err).
					Str("path", c.Path()).
					Msg("token verification failed")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, string(claims.Role))

			return next(c)
		}
	}
}
