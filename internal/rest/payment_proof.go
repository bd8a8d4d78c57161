package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pterostore/business/paymentproof"
	"pterostore/pkg/logger"

	"github.com/labstack/echo/v4"
)

type PaymentProofService interface {
	Upload(ctx context.Context, orderID, requesterID string, upload paymentproof.ProofUpload) (string, error)
}

type PaymentProofHandler struct {
	proofService PaymentProofService
	timeout      time.Duration
}

func NewPaymentProofHandler(proofService PaymentProofService) *PaymentProofHandler {
	return &PaymentProofHandler{
		proofService: proofService,
		timeout:      30 * time.Second,
	}
}

// Upload takes a multipart form with "file" and "orderId".
func (h *PaymentProofHandler) Upload(c echo.Context) error {
	orderID := c.FormValue("orderId")

	fileHeader, err := c.FormFile("file")
	if err != nil || orderID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "File dan order ID harus diisi"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "File dan order ID harus diisi"})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	filePath, err := h.proofService.Upload(ctx, orderID, userID(c), paymentproof.ProofUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentproof.ErrOrderNotUpdatable):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, paymentproof.ErrMissingFileOrOrder),
			errors.Is(err, paymentproof.ErrNotAnImage),
			errors.Is(err, paymentproof.ErrFileTooLarge):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, paymentproof.ErrStoreFailed):
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to upload payment proof", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Bukti pembayaran berhasil diunggah",
		"filePath": filePath,
	})
}
