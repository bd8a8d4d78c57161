package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pterostore/business/product"
	"pterostore/domain"

	"github.com/labstack/echo/v4"
)

type ProductService interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
}

type ProductHandler struct {
	productService ProductService
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		timeout:        10 * time.Second,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.ListActive(ctx)
	if err != nil {
		return serverError(c, "Failed to list products", err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	prod, err := h.productService.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to get product", err)
	}

	return c.JSON(http.StatusOK, prod)
}
