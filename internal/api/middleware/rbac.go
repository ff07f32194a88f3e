package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control with ANY-match semantics: the
// request is allowed when the verified roles intersect the allowed set.
// A request with no claims at all is unauthenticated (401), not forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get("roles").([]string)
			if !ok || len(roles) == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if len(allowed) == 0 {
				return next(c)
			}
			for _, r := range roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}
