package app

import (
	"fmt"

	"github.com/avc/tailor-ledger/internal/config"
	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/handlers"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/avc/tailor-ledger/internal/seed"
	"github.com/avc/tailor-ledger/internal/service"
	"github.com/avc/tailor-ledger/internal/utils/jwt"
	"github.com/avc/tailor-ledger/internal/utils/password"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user     domain.UserRepository
	order    domain.OrderRepository
	payment  domain.PaymentRequestRepository
	settings domain.SettingsRepository
}

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	wallet   domain.WalletService
	transfer domain.TransferService
	payment  domain.PaymentService
	bonus    domain.BonusService
	order    domain.OrderService
	settings domain.SettingsService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	wallet   *handlers.WalletHandler
	payments *handlers.PaymentsHandler
	bonus    *handlers.BonusHandler
	orders   *handlers.OrdersHandler
	settings *handlers.SettingsHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
}

// initDependencies создает все зависимости приложения поверх стартовых данных
func initDependencies(cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Загрузка стартовых данных
	data, err := seed.Load(passwordHasher)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	// Создание репозиториев
	repos := &repositories{
		user:     memory.NewUserRepository(data.Users),
		order:    memory.NewOrderRepository(data.Orders),
		payment:  memory.NewPaymentRequestRepository(data.PaymentRequests),
		settings: memory.NewSettingsRepository(data.IncomeSettings),
	}

	// Создание сервисов
	svcs := &services{
		auth:     service.NewAuthService(repos.user, passwordHasher, jwtManager),
		wallet:   service.NewWalletService(repos.user),
		transfer: service.NewTransferService(repos.user),
		payment:  service.NewPaymentService(repos.payment, repos.user),
		bonus:    service.NewBonusService(repos.user),
		order:    service.NewOrderService(repos.order),
		settings: service.NewSettingsService(repos.settings),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		wallet:   handlers.NewWalletHandler(svcs.wallet, svcs.transfer, logger),
		payments: handlers.NewPaymentsHandler(svcs.payment, logger),
		bonus:    handlers.NewBonusHandler(svcs.bonus, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, logger),
		settings: handlers.NewSettingsHandler(svcs.settings, logger),
		health:   handlers.NewHealthHandler(logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
	}, nil
}
