// Package memory реализует репозитории поверх процессных коллекций.
// Состояние живет только в памяти процесса и заполняется стартовыми
// данными; каждая операция выполняется в своей критической секции,
// записи заменяются целиком, наружу отдаются только копии.
package memory

import (
	"context"
	"sync"

	"github.com/avc/tailor-ledger/internal/domain"
)

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	mu sync.RWMutex
	// users хранит порядок добавления: демо-вход берет первого
	// подходящего по роли, как и исходные данные
	users []*domain.UserProfile
}

// NewUserRepository создает репозиторий с начальным набором пользователей
func NewUserRepository(seed []*domain.UserProfile) *UserRepository {
	users := make([]*domain.UserProfile, 0, len(seed))
	for _, u := range seed {
		users = append(users, u.Clone())
	}
	return &UserRepository{users: users}
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByMobile получает пользователя по номеру телефона (ключ входа)
func (r *UserRepository) GetByMobile(ctx context.Context, mobile string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Mobile == mobile {
			return u.Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

// FirstByRole получает первого пользователя с заданной ролью
func (r *UserRepository) FirstByRole(ctx context.Context, role domain.Role) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Role == role {
			return u.Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

// List возвращает всех пользователей
func (r *UserRepository) List(ctx context.Context) ([]*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.UserProfile, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

// Apply выполняет fn над записями ids в одной критической секции.
// fn получает копии в порядке ids; изменения фиксируются все вместе и
// только если fn вернула nil. Параллельные вызовы сериализуются: проверка
// баланса и запись результата не могут разойтись по разным снимкам.
func (r *UserRepository) Apply(ctx context.Context, ids []string, fn func(users []*domain.UserProfile) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := make([]*domain.UserProfile, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, u := range r.users {
			if u.ID == id {
				targets = append(targets, u.Clone())
				found = true
				break
			}
		}
		if !found {
			return ErrUserNotFound
		}
	}

	if err := fn(targets); err != nil {
		return err
	}

	for _, u := range targets {
		if err := r.replace(u); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepository) replace(user *domain.UserProfile) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user.Clone()
			return nil
		}
	}
	return ErrUserNotFound
}
