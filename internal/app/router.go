package app

import (
	"github.com/avc/tailor-ledger/internal/handlers"
	"github.com/avc/tailor-ledger/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты: вход и отслеживание заказа по квитанции
	r.Post("/api/login", deps.handlers.auth.Login)
	r.Post("/api/login/quick", deps.handlers.auth.QuickLogin)
	r.Get("/api/orders/track/{billNumber}", deps.handlers.orders.Track)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/api/wallet", deps.handlers.wallet.GetWallet)
		r.Post("/api/wallet/transfer", deps.handlers.wallet.Transfer)

		r.Post("/api/payments", deps.handlers.payments.CreateRequest)
		r.Get("/api/payments", deps.handlers.payments.ListRequests)

		r.Get("/api/orders", deps.handlers.orders.GetOrders)
		r.Post("/api/orders", deps.handlers.orders.UpsertOrder)
		r.Post("/api/orders/{id}/handover", deps.handlers.orders.Handover)
		r.Post("/api/orders/{id}/split", deps.handlers.orders.Split)

		r.Get("/api/settings", deps.handlers.settings.Get)

		// Административные эндпоинты
		r.Group(func(r chi.Router) {
			r.Use(handlers.AdminOnlyMiddleware())

			r.Get("/api/admin/payments", deps.handlers.payments.ListAllRequests)
			r.Post("/api/admin/payments/{id}/process", deps.handlers.payments.ProcessRequest)
			r.Post("/api/admin/bonus/distribute", deps.handlers.bonus.Distribute)
			r.Put("/api/admin/settings", deps.handlers.settings.Update)
		})
	})
}
