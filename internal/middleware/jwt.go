// Package middleware contains reusable HTTP middleware: bearer-token
// verification, per-client rate limiting and list-response caching.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// BearerAuth returns an Echo middleware that validates a Bearer token
// signed with HS256 and the given secret. Token issuance lives with an
// external identity provider; this service only verifies. The token
// subject is stored in the context under "subject" for request logging.
func BearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			if claims, ok := tok.Claims.(jwt.MapClaims); ok {
				c.Set("subject", claims["sub"])
			}
			return next(c)
		}
	}
}
