package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/ledger"
	"github.com/avc/tailor-ledger/internal/repository/memory"
)

// bonusDebitDescription — текст агрегированного списания у администратора
const bonusDebitDescription = "Monthly Bonus Distribution"

// BonusService реализует раздачу бонусов по готовому списку выплат
type BonusService struct {
	userRepo domain.UserRepository
}

// NewBonusService создает новый BonusService
func NewBonusService(userRepo domain.UserRepository) *BonusService {
	return &BonusService{
		userRepo: userRepo,
	}
}

// Distribute раздает бонусы по списку выплат. Если инициатор — ADMIN,
// его downlineIncome списывается на общую сумму одной агрегированной
// транзакцией. Каждый получатель зачисляется двойной проводкой:
// performanceWallet учитывает результат, mainBalance делает сумму
// доступной к выводу — под одной транзакцией с описанием выплаты.
// Вся раздача выполняется в одной критической секции: изменения
// фиксируются вместе либо не фиксируются вовсе.
func (s *BonusService) Distribute(ctx context.Context, actorID string, instructions []domain.BonusInstruction) error {
	if len(instructions) == 0 {
		return nil
	}

	var total float64
	byUser := make(map[string]domain.BonusInstruction, len(instructions))
	for _, instr := range instructions {
		if instr.Amount <= 0 {
			return ErrInvalidAmount
		}
		total += instr.Amount
		// Первая выплата на пользователя выигрывает
		if _, ok := byUser[instr.UserID]; !ok {
			byUser[instr.UserID] = instr
		}
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("bonus service: failed to get actor %s: %w", actorID, err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("bonus service: failed to list users: %w", err)
	}

	// Выплаты на несуществующих пользователей молча пропускаются;
	// пользователи из системы не удаляются, состав стабилен
	ids := make([]string, 0, len(byUser)+1)
	if actor.Role == domain.RoleAdmin {
		ids = append(ids, actor.ID)
	}
	for _, u := range users {
		if _, ok := byUser[u.ID]; ok && u.ID != actor.ID {
			ids = append(ids, u.ID)
		}
	}
	if _, ok := byUser[actor.ID]; ok && actor.Role != domain.RoleAdmin {
		ids = append(ids, actor.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	now := time.Now()

	err = s.userRepo.Apply(ctx, ids, func(targets []*domain.UserProfile) error {
		// Шаг 1: агрегированное списание у администратора
		if actor.Role == domain.RoleAdmin {
			admin := targets[0]
			wallet, err := ledger.Debit(admin.Wallet, domain.CompartmentDownlineIncome, total, bonusDebitDescription, now)
			if err != nil {
				return err
			}
			admin.Wallet = wallet
		}

		// Шаг 2: зачисление получателям; администратор-получатель
		// зачисляется поверх своего списания
		for _, target := range targets {
			instr, ok := byUser[target.ID]
			if !ok {
				continue
			}

			wallet, err := ledger.Credit(target.Wallet, domain.CompartmentPerformanceWallet, instr.Amount, instr.Description, now)
			if err != nil {
				return err
			}
			// Двойная проводка: зеркало в mainBalance под той же транзакцией
			wallet.MainBalance += instr.Amount
			target.Wallet = wallet
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("bonus service: failed to commit distribution by %s: %w", actorID, err)
	}

	return nil
}
