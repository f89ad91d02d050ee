package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sens-hq/user-service/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after Auth: an
// empty role means the auth context was never populated, which is an
// authentication failure rather than an authorization one.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
			}
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
