package memory

import (
	"context"
	"sync"

	"github.com/avc/tailor-ledger/internal/domain"
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	mu sync.RWMutex
	// orders упорядочены от новых к старым: новые заказы и дети
	// разделенного заказа встают в начало
	orders []*domain.Order
}

// NewOrderRepository создает репозиторий с начальным набором заказов
func NewOrderRepository(seed []*domain.Order) *OrderRepository {
	orders := make([]*domain.Order, 0, len(seed))
	for _, o := range seed {
		orders = append(orders, o.Clone())
	}
	return &OrderRepository{orders: orders}
}

// GetByID получает заказ по ID
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return nil, ErrOrderNotFound
}

// GetByBillNumber получает заказ по публичному номеру квитанции
func (r *OrderRepository) GetByBillNumber(ctx context.Context, billNumber string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.BillNumber == billNumber {
			return o.Clone(), nil
		}
	}
	return nil, ErrOrderNotFound
}

// List возвращает все заказы
func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

// ListByHandler возвращает заказы, находящиеся у заданного исполнителя
func (r *OrderRepository) ListByHandler(ctx context.Context, handlerID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Order
	for _, o := range r.orders {
		if o.CurrentHandlerID == handlerID {
			out = append(out, o.Clone())
		}
	}
	return out, nil
}

// Save заменяет заказ целиком; новый заказ встает в начало коллекции
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = order.Clone()
			return nil
		}
	}
	r.orders = append([]*domain.Order{order.Clone()}, r.orders...)
	return nil
}

// Apply выполняет fn над заказом в одной критической секции.
// fn получает копию; изменение фиксируется только если fn вернула nil.
func (r *OrderRepository) Apply(ctx context.Context, id string, fn func(order *domain.Order) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			cp := o.Clone()
			if err := fn(cp); err != nil {
				return err
			}
			r.orders[i] = cp.Clone()
			return nil
		}
	}
	return ErrOrderNotFound
}

// ReplaceWithChildren удаляет родительский заказ и ставит дочерние
// заказы в начало коллекции (разделение заказа на этапе мерки)
func (r *OrderRepository) ReplaceWithChildren(ctx context.Context, parentID string, children []*domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, o := range r.orders {
		if o.ID == parentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrOrderNotFound
	}

	rest := make([]*domain.Order, 0, len(r.orders)-1+len(children))
	for _, c := range children {
		rest = append(rest, c.Clone())
	}
	rest = append(rest, r.orders[:idx]...)
	rest = append(rest, r.orders[idx+1:]...)
	r.orders = rest
	return nil
}
