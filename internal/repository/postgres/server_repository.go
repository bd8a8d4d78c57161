package postgres

import (
	"context"
	"time"

	"pterostore/domain"

	"gorm.io/gorm"
)

type ServerRepository struct {
	DB *gorm.DB
}

func NewServerRepository(db *gorm.DB) *ServerRepository {
	return &ServerRepository{
		DB: db,
	}
}

func (r *ServerRepository) FindAllByUser(ctx context.Context, userID string) ([]domain.Server, error) {
	var servers []domain.Server

	err := r.DB.WithContext(ctx).
		Preload("Order").
		Preload("Order.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&servers).Error
	if err != nil {
		return nil, err
	}

	return servers, nil
}

// ExpireOverdue flips ACTIVE servers whose expiry has passed to EXPIRED and
// reports how many rows changed.
func (r *ServerRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).Model(&domain.Server{}).
		Where("status = ? AND expires_at < ?", domain.ServerStatusActive, now).
		Updates(map[string]interface{}{"status": domain.ServerStatusExpired, "updated_at": now})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
