package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pterostore/business/settings"
	"pterostore/domain"

	"github.com/labstack/echo/v4"
)

type SettingsService interface {
	GetPaymentInfo(ctx context.Context) (domain.PaymentInfoView, error)
}

type SettingsHandler struct {
	settingsService SettingsService
	timeout         time.Duration
}

func NewSettingsHandler(settingsService SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		timeout:         10 * time.Second,
	}
}

// GetPaymentInfo serves the manual-payment instructions shown on the order
// confirmation page.
func (h *SettingsHandler) GetPaymentInfo(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.settingsService.GetPaymentInfo(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to get payment info", err)
	}

	return c.JSON(http.StatusOK, view)
}
