package postgres

import (
	"context"

	"pterostore/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const settingsID = "default"

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{
		DB: db,
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	var settings domain.Settings

	err := r.DB.WithContext(ctx).Where("id = ?", settingsID).First(&settings).Error
	if err != nil {
		return domain.Settings{}, err
	}

	return settings, nil
}

// Upsert seeds the singleton row; an existing row is left untouched so
// manual edits survive re-seeding.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	settings.ID = settingsID

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(settings).Error
}
