package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/service"
	"go.uber.org/zap"
)

// WalletService определяет методы чтения кошелька.
type WalletService interface {
	GetWallet(ctx context.Context, userID string) (*domain.UserWallet, error)
}

// TransferService определяет методы перевода средств.
type TransferService interface {
	Transfer(ctx context.Context, senderID, receiverID string, amount float64, source, dest domain.Compartment) error
}

type WalletHandler struct {
	walletService   WalletService
	transferService TransferService
	logger          *zap.Logger
}

func NewWalletHandler(walletService WalletService, transferService TransferService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		transferService: transferService,
		logger:          logger,
	}
}

func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get wallet", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(wallet); err != nil {
		h.logger.Error("failed to encode wallet response", zap.Error(err))
	}
}

type transferRequest struct {
	ReceiverID string             `json:"receiverId"`
	Amount     float64            `json:"amount"`
	Source     domain.Compartment `json:"source"`
	Dest       domain.Compartment `json:"dest"`
}

// Transfer выполняет перевод от имени аутентифицированного пользователя.
// Пустой или совпадающий receiverId означает перевод между своими отсеками.
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	receiverID := req.ReceiverID
	if receiverID == "" {
		receiverID = userID
	}

	err := h.transferService.Transfer(r.Context(), userID, receiverID, req.Amount, req.Source, req.Dest)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrInsufficientBalance) {
			http.Error(w, "Payment Required", http.StatusPaymentRequired)
			return
		}
		if errors.Is(err, domain.ErrUnknownCompartment) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, service.ErrInvalidAmount) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to transfer", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
