package settings

import (
	"context"
	"errors"

	"pterostore/domain"

	"gorm.io/gorm"
)

var ErrSettingsNotFound = errors.New("Pengaturan tidak ditemukan")

// SettingsRepository contract interface
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
}

type settingsService struct {
	settingsRepo SettingsRepository
}

func NewSettingsService(settingsRepo SettingsRepository) *settingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

// GetPaymentInfo exposes only the manual-payment fields. Panel URL and API
// keys stay server-side.
func (s *settingsService) GetPaymentInfo(ctx context.Context) (domain.PaymentInfoView, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentInfoView{}, ErrSettingsNotFound
		}
		return domain.PaymentInfoView{}, err
	}

	return settings.PaymentView(), nil
}
