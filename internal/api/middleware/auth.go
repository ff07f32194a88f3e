package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/service"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Auth validates the bearer token and injects claims into context. Any
// verification failure results in 401; the message distinguishes expired
// from tampered tokens.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				case errors.Is(err, domain.ErrTokenSignatureInvalid):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token signature")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set("user_id", claims.Subject)
			c.Set("username", claims.Username)
			c.Set("roles", claims.Roles)

			return next(c)
		}
	}
}
