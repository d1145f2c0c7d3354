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

// BonusService определяет методы раздачи бонусов.
type BonusService interface {
	Distribute(ctx context.Context, actorID string, instructions []domain.BonusInstruction) error
}

type BonusHandler struct {
	bonusService BonusService
	logger       *zap.Logger
}

func NewBonusHandler(bonusService BonusService, logger *zap.Logger) *BonusHandler {
	return &BonusHandler{
		bonusService: bonusService,
		logger:       logger,
	}
}

type distributeRequest struct {
	Instructions []domain.BonusInstruction `json:"instructions"`
}

func (h *BonusHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	actorID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req distributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err := h.bonusService.Distribute(r.Context(), actorID, req.Instructions)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to distribute bonus", zap.Error(err), zap.String("actor_id", actorID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
