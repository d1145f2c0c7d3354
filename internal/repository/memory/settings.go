package memory

import (
	"context"
	"sync"

	"github.com/avc/tailor-ledger/internal/domain"
)

// SettingsRepository реализует domain.SettingsRepository.
// Настройки читаются во время обычной работы и заменяются целиком
// только действием администратора.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.IncomeSettings
}

// NewSettingsRepository создает репозиторий с начальными настройками
func NewSettingsRepository(seed *domain.IncomeSettings) *SettingsRepository {
	return &SettingsRepository{settings: seed.Clone()}
}

// Get возвращает текущие настройки начислений
func (r *SettingsRepository) Get(ctx context.Context) (*domain.IncomeSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings.Clone(), nil
}

// Update заменяет настройки целиком
func (r *SettingsRepository) Update(ctx context.Context, settings *domain.IncomeSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = settings.Clone()
	return nil
}
