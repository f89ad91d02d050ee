package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/sens-hq/user-service/internal/api/middleware"
)

// ctxIdentity extracts the auth context injected by the Auth middleware. A
// missing user id means the middleware never ran on this route; reject with
// 401 before touching any service.
func ctxIdentity(c echo.Context) (userID string, err error) {
	userID, _ = c.Get(mw.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return userID, nil
}
