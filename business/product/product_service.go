package product

import (
	"context"
	"errors"

	"pterostore/domain"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("Produk tidak ditemukan")

// ProductRepository contract interface
type ProductRepository interface {
	FindAllActive(ctx context.Context) ([]domain.Product, error)
	FindActiveByID(ctx context.Context, id string) (domain.Product, error)
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

// ListActive returns the catalog ordered by category then price ascending.
// Inactive tiers never appear.
func (s *productService) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindAllActive(ctx)
}

func (s *productService) GetByID(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}

	return product, nil
}
