package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/repository/memory"
)

// WalletService предоставляет чтение кошелька для дашбордов
type WalletService struct {
	userRepo domain.UserRepository
}

// NewWalletService создает новый WalletService
func NewWalletService(userRepo domain.UserRepository) *WalletService {
	return &WalletService{
		userRepo: userRepo,
	}
}

// GetWallet возвращает кошелек пользователя: под-балансы и журнал транзакций
func (s *WalletService) GetWallet(ctx context.Context, userID string) (*domain.UserWallet, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, memory.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("wallet service: failed to get user %s: %w", userID, err)
	}

	wallet := user.Wallet.Clone()
	return &wallet, nil
}
