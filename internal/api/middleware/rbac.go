package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Authorize gates a route by role. It is a pure check over the identity the
// Auth middleware attached earlier; it performs no I/O. Invoked without a
// resolved identity it rejects with 401.
func Authorize(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgNotAuthorized)
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("User role %s is not authorized to access this route", user.Role))
			}
			return next(c)
		}
	}
}
