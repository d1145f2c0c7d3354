package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/avc/tailor-ledger/internal/utils/jwt"
	"github.com/avc/tailor-ledger/internal/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthService, *jwt.Manager) {
	t.Helper()

	hasher := password.NewBCryptHasher(bcrypt.MinCost)
	hash := func(raw string) string {
		h, err := hasher.Hash(raw)
		require.NoError(t, err)
		return h
	}

	users := []*domain.UserProfile{
		{ID: "owner_special", Name: "Lord's Owner", Role: domain.RoleAdmin, Mobile: "7791007911", PasswordHash: hash("123156"), IsActive: true},
		{ID: "admin1", Name: "Vikram Admin", Role: domain.RoleAdmin, Mobile: "9000000001", PasswordHash: hash("admin123"), IsActive: true},
		{ID: "sr1", Name: "Rajesh Kumar", Role: domain.RoleShowroom, Mobile: "9000000002", PasswordHash: hash("shop123"), IsActive: true},
		{ID: "meas1", Name: "Ramesh Tailor", Role: domain.RoleMeasurement, Mobile: "9000000003", PasswordHash: hash("tailor123"), IsActive: true},
		{ID: "shirt1", Name: "Anil Shirt Maker", Role: domain.RoleShirtMaker, Mobile: "9000000004", PasswordHash: hash("worker123"), IsActive: true},
		{ID: "old1", Name: "Retired Worker", Role: domain.RolePress, Mobile: "9000000005", PasswordHash: hash("press123"), IsActive: false},
	}

	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(memory.NewUserRepository(users), hasher, manager), manager
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, manager := newAuthFixture(t)

	t.Run("Success", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "9000000002", "shop123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "sr1", user.ID)

		userID, role, err := manager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "sr1", userID)
		assert.Equal(t, domain.RoleShowroom, role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "9000000002", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown mobile", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "0000000000", "shop123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Inactive account", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "9000000005", "press123")
		assert.ErrorIs(t, err, domain.ErrInactiveAccount)
	})
}

func TestAuthService_QuickLogin(t *testing.T) {
	ctx := context.Background()
	svc, manager := newAuthFixture(t)

	tests := []struct {
		shortcut string
		wantID   string
		wantRole domain.Role
	}{
		{shortcut: "OWNER", wantID: "owner_special", wantRole: domain.RoleAdmin},
		{shortcut: "ADMIN", wantID: "owner_special", wantRole: domain.RoleAdmin},
		{shortcut: "SHOWROOM", wantID: "sr1", wantRole: domain.RoleShowroom},
		{shortcut: "MASTER", wantID: "meas1", wantRole: domain.RoleMeasurement},
		{shortcut: "WORKER", wantID: "shirt1", wantRole: domain.RoleShirtMaker},
		{shortcut: " worker ", wantID: "shirt1", wantRole: domain.RoleShirtMaker},
	}

	for _, tc := range tests {
		t.Run(tc.shortcut, func(t *testing.T) {
			token, user, err := svc.QuickLogin(ctx, tc.shortcut)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, user.ID)

			userID, role, err := manager.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, userID)
			assert.Equal(t, tc.wantRole, role)
		})
	}

	t.Run("Unknown shortcut", func(t *testing.T) {
		_, _, err := svc.QuickLogin(ctx, "CUSTOMER")
		assert.ErrorIs(t, err, domain.ErrDemoUserNotFound)
	})
}
