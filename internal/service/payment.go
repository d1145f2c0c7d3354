package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/ledger"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/google/uuid"
)

// depositDescription — текст транзакции при одобрении пополнения
const depositDescription = "Wallet Deposit Approved"

// PaymentService реализует workflow платежных заявок
type PaymentService struct {
	paymentRepo domain.PaymentRequestRepository
	userRepo    domain.UserRepository
}

// NewPaymentService создает новый PaymentService
func NewPaymentService(paymentRepo domain.PaymentRequestRepository, userRepo domain.UserRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
	}
}

// CreateRequest создает заявку со статусом PENDING.
// ID и дату назначает workflow, имя и роль пользователя фиксируются
// на момент создания.
func (s *PaymentService) CreateRequest(ctx context.Context, userID string, input domain.CreatePaymentInput) (*domain.PaymentRequest, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("payment service: failed to get user %s: %w", userID, err)
	}

	if input.SourceWallet != "" {
		if _, err := user.Wallet.Balance(input.SourceWallet); err != nil {
			return nil, err
		}
	}

	requestType := input.Type
	if requestType == "" {
		requestType = domain.PaymentRequestTypeWithdrawal
	}
	mode := input.Mode
	if mode == "" {
		mode = "UPI"
	}

	request := &domain.PaymentRequest{
		ID:           "PAY-" + uuid.New().String(),
		UserID:       user.ID,
		UserName:     user.Name,
		UserRole:     user.Role,
		Amount:       input.Amount,
		Type:         requestType,
		Mode:         mode,
		UTR:          input.UTR,
		SourceWallet: input.SourceWallet,
		Status:       domain.PaymentRequestStatusPending,
		Date:         time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("payment service: failed to create request for user %s: %w", userID, err)
	}

	return request, nil
}

// ProcessRequest переводит заявку в терминальный статус. Переход
// одноразовый и атомарный: из двух параллельных обработок только одна
// застает статус PENDING, вторая получает ErrPaymentRequestProcessed —
// одобрение пополнения не зачисляется дважды. Одобренное пополнение
// зачисляется в stitchingWallet пользователя; одобренный вывод
// рассчитывается вне системы и записей в кошельке не создает.
func (s *PaymentService) ProcessRequest(ctx context.Context, requestID string, action domain.PaymentRequestStatus) (*domain.PaymentRequest, error) {
	if action != domain.PaymentRequestStatusApproved && action != domain.PaymentRequestStatusRejected {
		return nil, ErrInvalidAction
	}

	var processed *domain.PaymentRequest
	err := s.paymentRepo.Apply(ctx, requestID, func(request *domain.PaymentRequest) error {
		if request.Status != domain.PaymentRequestStatusPending {
			return domain.ErrPaymentRequestProcessed
		}
		request.Status = action
		processed = request
		return nil
	})
	if err != nil {
		if errors.Is(err, memory.ErrRequestNotFound) {
			return nil, domain.ErrPaymentRequestNotFound
		}
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrPaymentRequestProcessed) {
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to process request %s: %w", requestID, err)
	}

	if action == domain.PaymentRequestStatusApproved && processed.Type == domain.PaymentRequestTypeDeposit {
		err := s.userRepo.Apply(ctx, []string{processed.UserID}, func(users []*domain.UserProfile) error {
			wallet, err := ledger.Credit(users[0].Wallet, domain.CompartmentStitchingWallet, processed.Amount, depositDescription, time.Now())
			if err != nil {
				return err
			}
			users[0].Wallet = wallet
			return nil
		})
		if err != nil {
			// Заявка не должна оставаться APPROVED без зачисления
			s.revert(ctx, requestID)
			if errors.Is(err, memory.ErrUserNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, fmt.Errorf("payment service: failed to credit deposit for user %s: %w", processed.UserID, err)
		}
	}

	return processed, nil
}

// revert возвращает заявку в PENDING после неудавшегося зачисления
func (s *PaymentService) revert(ctx context.Context, requestID string) {
	_ = s.paymentRepo.Apply(ctx, requestID, func(request *domain.PaymentRequest) error {
		request.Status = domain.PaymentRequestStatusPending
		return nil
	})
}

// ListRequests возвращает заявки пользователя
func (s *PaymentService) ListRequests(ctx context.Context, userID string) ([]*domain.PaymentRequest, error) {
	requests, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to list requests for user %s: %w", userID, err)
	}
	return requests, nil
}

// ListAllRequests возвращает все заявки (админский обзор)
func (s *PaymentService) ListAllRequests(ctx context.Context) ([]*domain.PaymentRequest, error) {
	requests, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to list requests: %w", err)
	}
	return requests, nil
}
