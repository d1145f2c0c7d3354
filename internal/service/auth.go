package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/avc/tailor-ledger/internal/utils/jwt"
	"github.com/avc/tailor-ledger/internal/utils/password"
)

// ownerMobile — демо-ярлык OWNER указывает на конкретный аккаунт владельца
const ownerMobile = "7791007911"

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Login аутентифицирует пользователя по номеру телефона и паролю
func (s *AuthService) Login(ctx context.Context, mobile, userPassword string) (string, *domain.UserProfile, error) {
	// Валидация входных данных
	if mobile == "" || userPassword == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Получение пользователя по номеру телефона
	user, err := s.userRepo.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth service: failed to get user by mobile %q: %w", mobile, err)
	}

	// Проверка пароля
	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Отключенный аккаунт не допускается к входу
	if !user.IsActive {
		return "", nil, domain.ErrInactiveAccount
	}

	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return token, user, nil
}

// QuickLogin выполняет демо-вход по ярлыку роли без проверки пароля
func (s *AuthService) QuickLogin(ctx context.Context, shortcut string) (string, *domain.UserProfile, error) {
	var (
		user *domain.UserProfile
		err  error
	)

	switch strings.ToUpper(strings.TrimSpace(shortcut)) {
	case "OWNER":
		user, err = s.userRepo.GetByMobile(ctx, ownerMobile)
	case "ADMIN":
		user, err = s.userRepo.FirstByRole(ctx, domain.RoleAdmin)
	case "SHOWROOM":
		user, err = s.userRepo.FirstByRole(ctx, domain.RoleShowroom)
	case "MASTER":
		user, err = s.userRepo.FirstByRole(ctx, domain.RoleMeasurement)
	case "WORKER":
		user, err = s.userRepo.FirstByRole(ctx, domain.RoleShirtMaker)
	default:
		return "", nil, domain.ErrDemoUserNotFound
	}

	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return "", nil, domain.ErrDemoUserNotFound
		}
		return "", nil, fmt.Errorf("auth service: failed to find demo user %q: %w", shortcut, err)
	}

	token, err := s.jwtManager.Generate(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return token, user, nil
}
