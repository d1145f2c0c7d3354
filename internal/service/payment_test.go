package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with defaults", func(t *testing.T) {
		userRepo := memory.NewUserRepository([]*domain.UserProfile{
			newTestUser("shirt1", "Anil Shirt Maker", domain.RoleShirtMaker, domain.UserWallet{WorkWallet: 5000}),
		})
		paymentRepo := memory.NewPaymentRequestRepository(nil)
		svc := NewPaymentService(paymentRepo, userRepo)

		request, err := svc.CreateRequest(ctx, "shirt1", domain.CreatePaymentInput{Amount: 2000})
		require.NoError(t, err)

		assert.NotEmpty(t, request.ID)
		assert.Equal(t, "shirt1", request.UserID)
		assert.Equal(t, "Anil Shirt Maker", request.UserName)
		assert.Equal(t, domain.RoleShirtMaker, request.UserRole)
		assert.Equal(t, domain.PaymentRequestTypeWithdrawal, request.Type)
		assert.Equal(t, "UPI", request.Mode)
		assert.Equal(t, domain.PaymentRequestStatusPending, request.Status)
		assert.WithinDuration(t, time.Now(), request.Date, time.Second)

		stored, err := paymentRepo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, request.ID, stored.ID)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		userRepo := memory.NewUserRepository([]*domain.UserProfile{
			newTestUser("shirt1", "Anil Shirt Maker", domain.RoleShirtMaker, domain.UserWallet{}),
		})
		svc := NewPaymentService(memory.NewPaymentRequestRepository(nil), userRepo)

		_, err := svc.CreateRequest(ctx, "shirt1", domain.CreatePaymentInput{Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = svc.CreateRequest(ctx, "shirt1", domain.CreatePaymentInput{Amount: -10})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc := NewPaymentService(memory.NewPaymentRequestRepository(nil), memory.NewUserRepository(nil))

		_, err := svc.CreateRequest(ctx, "ghost", domain.CreatePaymentInput{Amount: 100})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Unknown source wallet", func(t *testing.T) {
		userRepo := memory.NewUserRepository([]*domain.UserProfile{
			newTestUser("shirt1", "Anil Shirt Maker", domain.RoleShirtMaker, domain.UserWallet{}),
		})
		svc := NewPaymentService(memory.NewPaymentRequestRepository(nil), userRepo)

		_, err := svc.CreateRequest(ctx, "shirt1", domain.CreatePaymentInput{
			Amount:       100,
			SourceWallet: domain.Compartment("bogus"),
		})
		assert.ErrorIs(t, err, domain.ErrUnknownCompartment)
	})
}

func TestPaymentService_ProcessRequest(t *testing.T) {
	ctx := context.Background()

	newDepositFixture := func(t *testing.T) (*PaymentService, *memory.UserRepository, *memory.PaymentRequestRepository) {
		t.Helper()
		userRepo := memory.NewUserRepository([]*domain.UserProfile{
			newTestUser("sr1", "Rajesh Kumar", domain.RoleShowroom, domain.UserWallet{StitchingWallet: 5000}),
		})
		paymentRepo := memory.NewPaymentRequestRepository([]*domain.PaymentRequest{
			{
				ID:       "pay-2",
				UserID:   "sr1",
				UserName: "Rajesh Kumar",
				UserRole: domain.RoleShowroom,
				Amount:   50000,
				Type:     domain.PaymentRequestTypeDeposit,
				Mode:     "NEFT",
				UTR:      "AXIS123456",
				Status:   domain.PaymentRequestStatusPending,
				Date:     time.Now(),
			},
		})
		return NewPaymentService(paymentRepo, userRepo), userRepo, paymentRepo
	}

	t.Run("Approve deposit credits stitching wallet", func(t *testing.T) {
		svc, userRepo, _ := newDepositFixture(t)

		request, err := svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentRequestStatusApproved, request.Status)

		user, err := userRepo.GetByID(ctx, "sr1")
		require.NoError(t, err)
		assert.Equal(t, 55000.0, user.Wallet.StitchingWallet)

		require.Len(t, user.Wallet.Transactions, 1)
		tx := user.Wallet.Transactions[0]
		assert.Equal(t, domain.TransactionTypeCredit, tx.Type)
		assert.Equal(t, 50000.0, tx.Amount)
		assert.Equal(t, "Wallet Deposit Approved", tx.Description)
	})

	t.Run("Reject deposit leaves wallet unchanged", func(t *testing.T) {
		svc, userRepo, _ := newDepositFixture(t)

		request, err := svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentRequestStatusRejected, request.Status)

		user, err := userRepo.GetByID(ctx, "sr1")
		require.NoError(t, err)
		assert.Equal(t, 5000.0, user.Wallet.StitchingWallet)
		assert.Empty(t, user.Wallet.Transactions)
	})

	t.Run("Approve withdrawal records no wallet transaction", func(t *testing.T) {
		userRepo := memory.NewUserRepository([]*domain.UserProfile{
			newTestUser("shirt1", "Anil Shirt Maker", domain.RoleShirtMaker, domain.UserWallet{WorkWallet: 5000}),
		})
		paymentRepo := memory.NewPaymentRequestRepository([]*domain.PaymentRequest{
			{
				ID:     "pay-1",
				UserID: "shirt1",
				Amount: 2000,
				Type:   domain.PaymentRequestTypeWithdrawal,
				Status: domain.PaymentRequestStatusPending,
			},
		})
		svc := NewPaymentService(paymentRepo, userRepo)

		request, err := svc.ProcessRequest(ctx, "pay-1", domain.PaymentRequestStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentRequestStatusApproved, request.Status)

		user, err := userRepo.GetByID(ctx, "shirt1")
		require.NoError(t, err)
		assert.Equal(t, 5000.0, user.Wallet.WorkWallet)
		assert.Empty(t, user.Wallet.Transactions)
	})

	t.Run("Double processing is rejected without a second credit", func(t *testing.T) {
		svc, userRepo, _ := newDepositFixture(t)

		_, err := svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusApproved)
		require.NoError(t, err)

		_, err = svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusApproved)
		assert.ErrorIs(t, err, domain.ErrPaymentRequestProcessed)

		user, err := userRepo.GetByID(ctx, "sr1")
		require.NoError(t, err)
		assert.Equal(t, 55000.0, user.Wallet.StitchingWallet)
		assert.Len(t, user.Wallet.Transactions, 1)
	})

	t.Run("Reject after approve is rejected", func(t *testing.T) {
		svc, _, _ := newDepositFixture(t)

		_, err := svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusApproved)
		require.NoError(t, err)

		_, err = svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusRejected)
		assert.ErrorIs(t, err, domain.ErrPaymentRequestProcessed)
	})

	t.Run("Parallel approvals yield exactly one credit", func(t *testing.T) {
		svc, userRepo, _ := newDepositFixture(t)

		const workers = 10
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusApproved)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var approved, conflicts int
		for err := range errs {
			switch {
			case err == nil:
				approved++
			case errors.Is(err, domain.ErrPaymentRequestProcessed):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, approved)
		assert.Equal(t, workers-1, conflicts)

		user, err := userRepo.GetByID(ctx, "sr1")
		require.NoError(t, err)
		assert.Equal(t, 55000.0, user.Wallet.StitchingWallet)
		assert.Len(t, user.Wallet.Transactions, 1)
	})

	t.Run("Invalid action", func(t *testing.T) {
		svc, _, _ := newDepositFixture(t)

		_, err := svc.ProcessRequest(ctx, "pay-2", domain.PaymentRequestStatusPending)
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("Unknown request", func(t *testing.T) {
		svc, _, _ := newDepositFixture(t)

		_, err := svc.ProcessRequest(ctx, "pay-missing", domain.PaymentRequestStatusApproved)
		assert.ErrorIs(t, err, domain.ErrPaymentRequestNotFound)
	})
}

func TestPaymentService_ListRequests(t *testing.T) {
	ctx := context.Background()

	paymentRepo := memory.NewPaymentRequestRepository([]*domain.PaymentRequest{
		{ID: "pay-1", UserID: "shirt1", Status: domain.PaymentRequestStatusPending},
		{ID: "pay-2", UserID: "sr1", Status: domain.PaymentRequestStatusPending},
	})
	svc := NewPaymentService(paymentRepo, memory.NewUserRepository(nil))

	t.Run("By user", func(t *testing.T) {
		requests, err := svc.ListRequests(ctx, "shirt1")
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "pay-1", requests[0].ID)
	})

	t.Run("All", func(t *testing.T) {
		requests, err := svc.ListAllRequests(ctx)
		require.NoError(t, err)
		assert.Len(t, requests, 2)
	})

	t.Run("Empty for unknown user", func(t *testing.T) {
		requests, err := svc.ListRequests(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, requests)
	})
}
