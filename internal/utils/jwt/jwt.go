package jwt

import (
	"fmt"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims представляет JWT claims с ID и ролью пользователя
type Claims struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager управляет генерацией и валидацией JWT токенов
type Manager struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Generate генерирует новый JWT токен для пользователя
func (m *Manager) Generate(userID string, role domain.Role) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate валидирует JWT токен и возвращает ID и роль пользователя
func (m *Manager) Validate(tokenString string) (string, domain.Role, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})

	if err != nil {
		return "", "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}

	return claims.UserID, claims.Role, nil
}
