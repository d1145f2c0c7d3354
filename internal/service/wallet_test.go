package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletService_GetWallet(t *testing.T) {
	ctx := context.Background()

	repo := memory.NewUserRepository([]*domain.UserProfile{
		newTestUser("sr1", "Rajesh Kumar", domain.RoleShowroom, domain.UserWallet{
			StitchingWallet: 5000,
			Transactions: []domain.Transaction{
				{ID: "tx-1", Amount: 5000, Type: domain.TransactionTypeCredit, Description: "Wallet Deposit Approved", Date: time.Now()},
			},
		}),
	})
	svc := NewWalletService(repo)

	t.Run("Success", func(t *testing.T) {
		wallet, err := svc.GetWallet(ctx, "sr1")
		require.NoError(t, err)
		assert.Equal(t, 5000.0, wallet.StitchingWallet)
		require.Len(t, wallet.Transactions, 1)
		assert.Equal(t, "tx-1", wallet.Transactions[0].ID)
	})

	t.Run("Returned wallet is a copy", func(t *testing.T) {
		wallet, err := svc.GetWallet(ctx, "sr1")
		require.NoError(t, err)

		wallet.StitchingWallet = 0
		wallet.Transactions[0].Amount = 0

		user, err := repo.GetByID(ctx, "sr1")
		require.NoError(t, err)
		assert.Equal(t, 5000.0, user.Wallet.StitchingWallet)
		assert.Equal(t, 5000.0, user.Wallet.Transactions[0].Amount)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := svc.GetWallet(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
