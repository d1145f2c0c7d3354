package service

import (
	"context"
	"fmt"

	"github.com/avc/tailor-ledger/internal/domain"
)

// incomeLevels — количество уровней структуры в таблицах комиссий
const incomeLevels = 10

// SettingsService реализует domain.SettingsService
type SettingsService struct {
	settingsRepo domain.SettingsRepository
}

// NewSettingsService создает новый SettingsService
func NewSettingsService(settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// Get возвращает текущие настройки начислений
func (s *SettingsService) Get(ctx context.Context) (*domain.IncomeSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings service: failed to get settings: %w", err)
	}
	return settings, nil
}

// Update заменяет настройки начислений; разрешено только администратору
func (s *SettingsService) Update(ctx context.Context, actorRole domain.Role, settings *domain.IncomeSettings) error {
	if actorRole != domain.RoleAdmin {
		return domain.ErrPermissionDenied
	}

	if len(settings.UplineLevels) != incomeLevels || len(settings.DownlineLevels) != incomeLevels {
		return ErrInvalidSettings
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return fmt.Errorf("settings service: failed to update settings: %w", err)
	}
	return nil
}
