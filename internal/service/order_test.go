package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture() *memory.OrderRepository {
	return memory.NewOrderRepository([]*domain.Order{
		{
			ID:                 "ord-001",
			BillNumber:         "BILL-8392",
			CustomerName:       "Suresh Patel",
			Status:             domain.OrderStatusMeasurementInbox,
			CurrentHandlerID:   "meas1",
			CurrentHandlerRole: domain.RoleMeasurement,
			Items: []domain.OrderItem{
				{Type: domain.ItemTypeShirt, Rate: 800, Quantity: 2},
			},
			History: []domain.OrderEvent{
				{Action: "Order Booked", User: "Rajesh Kumar", Role: domain.RoleShowroom, Timestamp: time.Now()},
			},
		},
	})
}

func TestOrderService_Track(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newOrderFixture())

	t.Run("Found", func(t *testing.T) {
		order, err := svc.Track(ctx, "BILL-8392")
		require.NoError(t, err)
		assert.Equal(t, "ord-001", order.ID)
	})

	t.Run("Trims whitespace", func(t *testing.T) {
		order, err := svc.Track(ctx, "  BILL-8392  ")
		require.NoError(t, err)
		assert.Equal(t, "ord-001", order.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := svc.Track(ctx, "BILL-0000")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Empty bill number", func(t *testing.T) {
		_, err := svc.Track(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderService_UpsertOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("New order gets an ID", func(t *testing.T) {
		repo := newOrderFixture()
		svc := NewOrderService(repo)

		order := &domain.Order{BillNumber: "BILL-5555", CustomerName: "New Customer", Status: domain.OrderStatusBooked}
		require.NoError(t, svc.UpsertOrder(ctx, order))
		assert.NotEmpty(t, order.ID)

		stored, err := repo.GetByBillNumber(ctx, "BILL-5555")
		require.NoError(t, err)
		assert.Equal(t, order.ID, stored.ID)
	})

	t.Run("Existing order is replaced", func(t *testing.T) {
		repo := newOrderFixture()
		svc := NewOrderService(repo)

		order := &domain.Order{ID: "ord-001", BillNumber: "BILL-8392", Status: domain.OrderStatusCompleted}
		require.NoError(t, svc.UpsertOrder(ctx, order))

		stored, err := repo.GetByID(ctx, "ord-001")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, stored.Status)

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}

func TestOrderService_Handover(t *testing.T) {
	ctx := context.Background()

	t.Run("Status and handler change together with one history entry", func(t *testing.T) {
		repo := newOrderFixture()
		svc := NewOrderService(repo)

		order, err := svc.Handover(ctx, domain.HandoverInput{
			OrderID:     "ord-001",
			Status:      domain.OrderStatusCuttingInbox,
			HandlerID:   "cut1",
			HandlerRole: domain.RoleCutting,
			Action:      "Measurements Completed",
			ActorName:   "Ramesh Tailor",
			ActorRole:   domain.RoleMeasurement,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.OrderStatusCuttingInbox, order.Status)
		assert.Equal(t, "cut1", order.CurrentHandlerID)
		assert.Equal(t, domain.RoleCutting, order.CurrentHandlerRole)

		require.Len(t, order.History, 2)
		last := order.History[len(order.History)-1]
		assert.Equal(t, "Measurements Completed", last.Action)
		assert.Equal(t, "Ramesh Tailor", last.User)

		stored, err := repo.GetByID(ctx, "ord-001")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCuttingInbox, stored.Status)
	})

	t.Run("Unknown order", func(t *testing.T) {
		svc := NewOrderService(newOrderFixture())

		_, err := svc.Handover(ctx, domain.HandoverInput{OrderID: "ord-missing"})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Parallel handovers keep every history entry", func(t *testing.T) {
		repo := newOrderFixture()
		svc := NewOrderService(repo)

		const workers = 50
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Handover(ctx, domain.HandoverInput{
					OrderID:   "ord-001",
					Status:    domain.OrderStatusCuttingInbox,
					HandlerID: "cut1",
					Action:    "Measurements Completed",
					ActorName: "Ramesh Tailor",
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.GetByID(ctx, "ord-001")
		require.NoError(t, err)
		// Стартовая запись плюс по одной на каждую передачу
		assert.Len(t, stored.History, 1+workers)
	})
}

func TestOrderService_SplitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Parent replaced by children", func(t *testing.T) {
		repo := newOrderFixture()
		svc := NewOrderService(repo)

		children := []*domain.Order{
			{BillNumber: "BILL-8392-A", Status: domain.OrderStatusCuttingInbox},
			{BillNumber: "BILL-8392-B", Status: domain.OrderStatusCuttingInbox},
		}
		require.NoError(t, svc.SplitOrder(ctx, "ord-001", children))

		for _, child := range children {
			assert.NotEmpty(t, child.ID)
		}

		_, err := repo.GetByID(ctx, "ord-001")
		assert.Error(t, err)

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("Unknown parent", func(t *testing.T) {
		svc := NewOrderService(newOrderFixture())

		err := svc.SplitOrder(ctx, "ord-missing", []*domain.Order{{BillNumber: "BILL-1"}})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}
