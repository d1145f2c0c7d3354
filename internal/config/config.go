package config

import (
	"flag"
	"os"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		JWTTokenTTL: 24 * time.Hour,
		LogLevel:    "info",
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envTokenTTL, ok := os.LookupEnv("JWT_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(envTokenTTL); err == nil && ttl > 0 {
			cfg.JWTTokenTTL = ttl
		}
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	return cfg, nil
}
