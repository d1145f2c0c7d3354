package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PaymentService определяет методы workflow платежных заявок.
type PaymentService interface {
	CreateRequest(ctx context.Context, userID string, input domain.CreatePaymentInput) (*domain.PaymentRequest, error)
	ProcessRequest(ctx context.Context, requestID string, action domain.PaymentRequestStatus) (*domain.PaymentRequest, error)
	ListRequests(ctx context.Context, userID string) ([]*domain.PaymentRequest, error)
	ListAllRequests(ctx context.Context) ([]*domain.PaymentRequest, error)
}

type PaymentsHandler struct {
	paymentService PaymentService
	logger         *zap.Logger
}

func NewPaymentsHandler(paymentService PaymentService, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *PaymentsHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input domain.CreatePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	request, err := h.paymentService.CreateRequest(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrUnknownCompartment) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to create payment request", zap.Error(err), zap.String("user_id", userID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(request); err != nil {
		h.logger.Error("failed to encode payment request response", zap.Error(err))
	}
}

// ListRequests возвращает заявки аутентифицированного пользователя
func (h *PaymentsHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	requests, err := h.paymentService.ListRequests(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list payment requests", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(requests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(requests); err != nil {
		h.logger.Error("failed to encode payment requests response", zap.Error(err))
	}
}

// ListAllRequests возвращает все заявки (админский обзор)
func (h *PaymentsHandler) ListAllRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.paymentService.ListAllRequests(r.Context())
	if err != nil {
		h.logger.Error("failed to list all payment requests", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(requests); err != nil {
		h.logger.Error("failed to encode payment requests response", zap.Error(err))
	}
}

type processRequest struct {
	Action domain.PaymentRequestStatus `json:"action"`
}

// ProcessRequest одобряет или отклоняет заявку; переход одноразовый
func (h *PaymentsHandler) ProcessRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	request, err := h.paymentService.ProcessRequest(r.Context(), requestID, req.Action)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAction) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrPaymentRequestNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrPaymentRequestProcessed) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to process payment request", zap.Error(err), zap.String("request_id", requestID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(request); err != nil {
		h.logger.Error("failed to encode processed request response", zap.Error(err))
	}
}
