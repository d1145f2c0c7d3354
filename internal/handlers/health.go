package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}

// Health возвращает статус приложения.
// Внешних зависимостей нет: состояние живет в памяти процесса.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{Status: "ok"}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
