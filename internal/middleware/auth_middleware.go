package middleware

import (
	"net/http"
	"strings"

	"pterostore/pkg/utils"

	"github.com/labstack/echo/v4"
)

type responseError struct {
	Message string `json:"message"`
}

// invalidToken is the one body every authentication failure gets: missing
// header, malformed header, bad signature, expired token. No distinction
// is surfaced to the caller.
var invalidToken = responseError{Message: "Token tidak valid"}

// Auth validates the bearer token and stores the claims on the request
// context for handlers.
func Auth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, invalidToken)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, invalidToken)
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
