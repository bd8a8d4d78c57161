package postgres

import (
	"context"
	"time"

	"pterostore/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// FindActiveByIdentifier resolves a login identifier that may be either the
// email or the username. Inactive accounts are treated as missing.
func (r *UserRepository) FindActiveByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).
		Where("(email = ? OR username = ?) AND is_active = ?", identifier, identifier, true).
		First(&user).Error
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateProfile writes only the mutable profile columns. Email and username
// are immutable once set and are never part of the update.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, hashedPassword string) error {
	result := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"password": hashedPassword, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
