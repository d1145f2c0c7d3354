package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/tailor-ledger/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type quickLoginRequest struct {
	Shortcut string `json:"shortcut"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, domain.ErrInactiveAccount) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error("failed to login", zap.Error(err), zap.String("mobile", req.Mobile))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(user); err != nil {
		h.logger.Error("failed to encode login response", zap.Error(err))
	}
}

// QuickLogin выполняет демо-вход по ярлыку роли
func (h *AuthHandler) QuickLogin(w http.ResponseWriter, r *http.Request) {
	var req quickLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, user, err := h.authService.QuickLogin(r.Context(), req.Shortcut)
	if err != nil {
		if errors.Is(err, domain.ErrDemoUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to quick login", zap.Error(err), zap.String("shortcut", req.Shortcut))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(user); err != nil {
		h.logger.Error("failed to encode quick login response", zap.Error(err))
	}
}
