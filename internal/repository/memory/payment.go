package memory

import (
	"context"
	"sync"

	"github.com/avc/tailor-ledger/internal/domain"
)

// PaymentRequestRepository реализует domain.PaymentRequestRepository
type PaymentRequestRepository struct {
	mu sync.RWMutex
	// requests упорядочены от новых к старым
	requests []*domain.PaymentRequest
}

// NewPaymentRequestRepository создает репозиторий с начальным набором заявок
func NewPaymentRequestRepository(seed []*domain.PaymentRequest) *PaymentRequestRepository {
	requests := make([]*domain.PaymentRequest, 0, len(seed))
	for _, p := range seed {
		cp := *p
		requests = append(requests, &cp)
	}
	return &PaymentRequestRepository{requests: requests}
}

// GetByID получает заявку по ID
func (r *PaymentRequestRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.requests {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrRequestNotFound
}

// List возвращает все заявки
func (r *PaymentRequestRepository) List(ctx context.Context) ([]*domain.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.PaymentRequest, 0, len(r.requests))
	for _, p := range r.requests {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ListByUser возвращает заявки пользователя
func (r *PaymentRequestRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.PaymentRequest
	for _, p := range r.requests {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Create добавляет новую заявку в начало коллекции
func (r *PaymentRequestRepository) Create(ctx context.Context, request *domain.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *request
	r.requests = append([]*domain.PaymentRequest{&cp}, r.requests...)
	return nil
}

// Apply выполняет fn над заявкой в одной критической секции.
// fn получает копию; изменение фиксируется только если fn вернула nil.
// Проверка статуса и его смена сериализуются между параллельными вызовами.
func (r *PaymentRequestRepository) Apply(ctx context.Context, id string, fn func(request *domain.PaymentRequest) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.requests {
		if p.ID == id {
			cp := *p
			if err := fn(&cp); err != nil {
				return err
			}
			stored := cp
			r.requests[i] = &stored
			return nil
		}
	}
	return ErrRequestNotFound
}
