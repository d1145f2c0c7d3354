package app

import (
	"fmt"
	"net/http"

	"github.com/avc/tailor-ledger/internal/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация зависимостей и стартовых данных
	deps, err := initDependencies(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("seed data loaded")

	// Настройка роутера
	router := setupRouter(deps, deps.jwtManager, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		router: router,
		server: server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown()

	return nil
}
