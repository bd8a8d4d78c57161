package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pterostore/business/orders"
	"pterostore/business/product"
	"pterostore/domain"
	"pterostore/pkg/logger"

	"github.com/labstack/echo/v4"
)

type OrdersService interface {
	CreateOrder(ctx context.Context, userID, productID string, duration int) (domain.Order, error)
	GetOrder(ctx context.Context, orderID, requesterID string) (orders.OrderDetail, error)
	ListOrdersForUser(ctx context.Context, userID string) ([]orders.OrderListItem, error)
}

type OrdersHandler struct {
	ordersService OrdersService
	timeout       time.Duration
}

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

type CreateOrderRequest struct {
	ProductID string `json:"productId"`
	Duration  int    `json:"duration"`
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Product ID dan durasi harus diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, userID(c), req.ProductID, req.Duration)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrMissingOrderFields):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, product.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to create order", err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Order berhasil dibuat",
		"order":   order,
	})
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.ordersService.GetOrder(ctx, c.Param("id"), userID(c))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to get order", err)
	}

	return c.JSON(http.StatusOK, detail)
}

// GetUserOrders serves the dashboard order list for the token's owner.
func (h *OrdersHandler) GetUserOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.ordersService.ListOrdersForUser(ctx, userID(c))
	if err != nil {
		return serverError(c, "Failed to list user orders", err)
	}

	return c.JSON(http.StatusOK, items)
}
