package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shop-backend/internal/tokens"
)

const ClaimsKey = "claims"

type Gate struct {
	JWTSecret []byte
}

func NewGate(secret []byte) *Gate {
	return &Gate{JWTSecret: secret}
}

// RequireAuth gates a route behind a bearer token. A missing or malformed
// header and an invalid token share the status code but not the message.
func (m *Gate) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": "Authorization token missing or malformed",
			})
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "), m.JWTSecret)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Set(ClaimsKey, claims)
		return next(c)
	}
}
