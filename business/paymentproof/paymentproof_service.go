package paymentproof

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"pterostore/business/orders"
	"pterostore/pkg/logger"
	"pterostore/pkg/metrics"

	"gorm.io/gorm"
)

const maxProofSize = 5 * 1024 * 1024

var (
	ErrMissingFileOrOrder = errors.New("File dan order ID harus diisi")
	// ErrOrderNotUpdatable covers missing order, foreign order, and an
	// order that already left PENDING. One message for all three.
	ErrOrderNotUpdatable = errors.New("Order tidak ditemukan atau tidak dapat diupdate")
	ErrNotAnImage        = errors.New("File harus berupa gambar")
	ErrFileTooLarge      = errors.New("Ukuran file maksimal 5MB")
	ErrStoreFailed       = errors.New("Gagal menyimpan file")
)

// ProofStore contract interface
type ProofStore interface {
	Save(orderID, originalName string, content io.Reader) (string, error)
}

type ProofUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type proofService struct {
	orderRepo orders.OrdersRepository
	store     ProofStore
}

func NewProofService(orderRepo orders.OrdersRepository, store ProofStore) *proofService {
	return &proofService{
		orderRepo: orderRepo,
		store:     store,
	}
}

// Upload validates and stores a payment-proof image against a pending
// order, then records the public path on the order row. File write and
// row update are two sequential effects, not a transaction: a crash in
// between leaves an orphaned file, which a re-upload simply replaces.
// Concurrent uploads for the same order are last-write-wins.
func (s *proofService) Upload(ctx context.Context, orderID, requesterID string, upload ProofUpload) (string, error) {
	start := time.Now()

	if orderID == "" || upload.Content == nil {
		return "", ErrMissingFileOrOrder
	}

	if _, err := s.orderRepo.FindPendingByIDAndUser(ctx, orderID, requesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.ProofUploads.WithLabelValues("rejected").Inc()
			return "", ErrOrderNotUpdatable
		}
		return "", err
	}

	if !strings.HasPrefix(upload.ContentType, "image/") {
		metrics.ProofUploads.WithLabelValues("rejected").Inc()
		return "", ErrNotAnImage
	}

	if upload.Size > maxProofSize {
		metrics.ProofUploads.WithLabelValues("rejected").Inc()
		return "", ErrFileTooLarge
	}

	publicPath, err := s.store.Save(orderID, upload.FileName, upload.Content)
	if err != nil {
		logger.Error("Failed to store payment proof", err)
		return "", ErrStoreFailed
	}

	if err := s.orderRepo.SetPaymentProof(ctx, orderID, publicPath); err != nil {
		logger.Error("Failed to record payment proof path", err)
		return "", ErrStoreFailed
	}

	metrics.ProofUploads.WithLabelValues("stored").Inc()
	metrics.ProofUploadLatency.Observe(time.Since(start).Seconds())

	return publicPath, nil
}
