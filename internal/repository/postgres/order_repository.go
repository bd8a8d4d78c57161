package postgres

import (
	"context"
	"time"

	"pterostore/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}

	return nil
}

// FindByIDAndUser scopes the lookup to the owner. A missing order and an
// order owned by someone else are indistinguishable to the caller.
func (r *OrderRepository) FindByIDAndUser(ctx context.Context, id, userID string) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

// FindPendingByIDAndUser is the payment-proof gate: the order must exist,
// belong to the requester, and still be PENDING.
func (r *OrderRepository) FindPendingByIDAndUser(ctx context.Context, id, userID string) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, domain.OrderStatusPending).
		First(&order).Error
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (r *OrderRepository) FindAllByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// SetPaymentProof records the stored file path. Intentionally a blind
// overwrite: a re-upload before admin action replaces the previous proof.
func (r *OrderRepository) SetPaymentProof(ctx context.Context, id, publicPath string) error {
	result := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"payment_proof": publicPath, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
