package rest

import (
	"context"
	"net/http"
	"time"

	"pterostore/business/server"

	"github.com/labstack/echo/v4"
)

type ServerService interface {
	ListServersForUser(ctx context.Context, userID string) ([]server.ServerListItem, error)
}

type ServerHandler struct {
	serverService ServerService
	timeout       time.Duration
}

func NewServerHandler(serverService ServerService) *ServerHandler {
	return &ServerHandler{
		serverService: serverService,
		timeout:       10 * time.Second,
	}
}

func (h *ServerHandler) GetUserServers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	servers, err := h.serverService.ListServersForUser(ctx, userID(c))
	if err != nil {
		return serverError(c, "Failed to list user servers", err)
	}

	return c.JSON(http.StatusOK, servers)
}
