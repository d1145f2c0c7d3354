package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderService определяет методы работы с заказами.
type OrderService interface {
	Track(ctx context.Context, billNumber string) (*domain.Order, error)
	GetOrders(ctx context.Context) ([]*domain.Order, error)
	UpsertOrder(ctx context.Context, order *domain.Order) error
	Handover(ctx context.Context, input domain.HandoverInput) (*domain.Order, error)
	SplitOrder(ctx context.Context, parentID string, children []*domain.Order) error
}

type OrdersHandler struct {
	orderService OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// Track — публичный поиск заказа по номеру квитанции, без аутентификации
func (h *OrdersHandler) Track(w http.ResponseWriter, r *http.Request) {
	billNumber := chi.URLParam(r, "billNumber")

	order, err := h.orderService.Track(r.Context(), billNumber)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to track order", zap.Error(err), zap.String("bill_number", billNumber))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

func (h *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetOrders(r.Context())
	if err != nil {
		h.logger.Error("failed to get orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		h.logger.Error("failed to encode orders response", zap.Error(err))
	}
}

func (h *OrdersHandler) UpsertOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.orderService.UpsertOrder(r.Context(), &order); err != nil {
		h.logger.Error("failed to upsert order", zap.Error(err), zap.String("order_id", order.ID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

type handoverRequest struct {
	Status      domain.OrderStatus `json:"status"`
	HandlerID   string             `json:"handlerId"`
	HandlerRole domain.Role        `json:"handlerRole"`
	Action      string             `json:"action"`
	ActorName   string             `json:"actorName"`
	ActorRole   domain.Role        `json:"actorRole"`
}

// Handover передает заказ следующему этапу
func (h *OrdersHandler) Handover(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req handoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.Handover(r.Context(), domain.HandoverInput{
		OrderID:     orderID,
		Status:      req.Status,
		HandlerID:   req.HandlerID,
		HandlerRole: req.HandlerRole,
		Action:      req.Action,
		ActorName:   req.ActorName,
		ActorRole:   req.ActorRole,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to handover order", zap.Error(err), zap.String("order_id", orderID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

type splitRequest struct {
	Children []*domain.Order `json:"children"`
}

// Split заменяет родительский заказ дочерними
func (h *OrdersHandler) Split(w http.ResponseWriter, r *http.Request) {
	parentID := chi.URLParam(r, "id")

	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.orderService.SplitOrder(r.Context(), parentID, req.Children); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to split order", zap.Error(err), zap.String("order_id", parentID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
