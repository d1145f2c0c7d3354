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

// SettingsService определяет методы работы с настройками начислений.
type SettingsService interface {
	Get(ctx context.Context) (*domain.IncomeSettings, error)
	Update(ctx context.Context, actorRole domain.Role, settings *domain.IncomeSettings) error
}

type SettingsHandler struct {
	settingsService SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get income settings", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(settings); err != nil {
		h.logger.Error("failed to encode settings response", zap.Error(err))
	}
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	role, ok := GetUserRole(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var settings domain.IncomeSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err := h.settingsService.Update(r.Context(), role, &settings)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if errors.Is(err, service.ErrInvalidSettings) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to update income settings", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
