package rest

import (
	"net/http"

	"pterostore/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// serverError logs the detail and returns the generic 500 body. Clients
// never see internal error text.
func serverError(c echo.Context, msg string, err error) error {
	logger.Error(msg, err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Terjadi kesalahan server"})
}

func userID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}
