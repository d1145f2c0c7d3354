package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/google/uuid"
)

// OrderService реализует domain.OrderService
type OrderService struct {
	orderRepo domain.OrderRepository
}

// NewOrderService создает новый OrderService
func NewOrderService(orderRepo domain.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// Track выполняет публичный поиск заказа по номеру квитанции
func (s *OrderService) Track(ctx context.Context, billNumber string) (*domain.Order, error) {
	billNumber = strings.TrimSpace(billNumber)
	if billNumber == "" {
		return nil, domain.ErrOrderNotFound
	}

	order, err := s.orderRepo.GetByBillNumber(ctx, billNumber)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, memory.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to track order %q: %w", billNumber, err)
	}

	return order, nil
}

// GetOrders возвращает все заказы
func (s *OrderService) GetOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}
	return orders, nil
}

// UpsertOrder заменяет заказ целиком или добавляет новый
func (s *OrderService) UpsertOrder(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = "ord-" + uuid.New().String()
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return fmt.Errorf("order service: failed to save order %s: %w", order.ID, err)
	}
	return nil
}

// Handover передает заказ следующему этапу: статус и текущий исполнитель
// меняются вместе, в историю дописывается одна запись. Изменение
// выполняется в одной критической секции, параллельные передачи не
// теряют записей истории.
func (s *OrderService) Handover(ctx context.Context, input domain.HandoverInput) (*domain.Order, error) {
	var updated *domain.Order
	err := s.orderRepo.Apply(ctx, input.OrderID, func(order *domain.Order) error {
		order.Status = input.Status
		order.CurrentHandlerID = input.HandlerID
		order.CurrentHandlerRole = input.HandlerRole
		order.History = append(order.History, domain.OrderEvent{
			Action:    input.Action,
			Timestamp: time.Now(),
			User:      input.ActorName,
			Role:      input.ActorRole,
		})
		updated = order
		return nil
	})
	if err != nil {
		if errors.Is(err, memory.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to handover order %s: %w", input.OrderID, err)
	}

	return updated, nil
}

// SplitOrder заменяет родительский заказ дочерними (разделение на мерке)
func (s *OrderService) SplitOrder(ctx context.Context, parentID string, children []*domain.Order) error {
	for _, child := range children {
		if child.ID == "" {
			child.ID = "ord-" + uuid.New().String()
		}
	}

	if err := s.orderRepo.ReplaceWithChildren(ctx, parentID, children); err != nil {
		if errors.Is(err, memory.ErrOrderNotFound) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("order service: failed to split order %s: %w", parentID, err)
	}
	return nil
}
