package postgres

import (
	"context"

	"pterostore/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

// FindAllActive returns the storefront catalog: active tiers ordered by
// category, cheapest first within each category.
func (r *ProductRepository) FindAllActive(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product

	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC").
		Order("price ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) FindActiveByID(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product

	err := r.DB.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (domain.Product, error) {
	var product domain.Product

	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&product).Error
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return err
	}

	return nil
}
