package seed

import (
	"testing"

	"github.com/avc/tailor-ledger/internal/domain"
	"github.com/avc/tailor-ledger/internal/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad(t *testing.T) {
	hasher := password.NewBCryptHasher(bcrypt.MinCost)

	data, err := Load(hasher)
	require.NoError(t, err)

	t.Run("Passwords are hashed", func(t *testing.T) {
		for _, u := range data.Users {
			require.NotEmpty(t, u.PasswordHash, "user %s", u.ID)
			assert.NotEqual(t, "123156", u.PasswordHash)
		}
	})

	t.Run("Owner account", func(t *testing.T) {
		var owner *domain.UserProfile
		for _, u := range data.Users {
			if u.Mobile == "7791007911" {
				owner = u
				break
			}
		}
		require.NotNil(t, owner)
		assert.Equal(t, domain.RoleAdmin, owner.Role)
		assert.Equal(t, 500000.0, owner.Wallet.MainBalance)
		assert.Equal(t, 1500000.0, owner.Wallet.DownlineIncome)
		require.NoError(t, hasher.Check(owner.PasswordHash, "123156"))
	})

	t.Run("Demo shortcuts resolve", func(t *testing.T) {
		roles := map[domain.Role]bool{}
		for _, u := range data.Users {
			roles[u.Role] = true
		}
		// Каждый ярлык демо-входа должен находить пользователя
		for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleShowroom, domain.RoleMeasurement, domain.RoleShirtMaker} {
			assert.True(t, roles[role], "missing user with role %s", role)
		}
	})

	t.Run("Referral chain points to existing users", func(t *testing.T) {
		ids := map[string]bool{}
		for _, u := range data.Users {
			ids[u.ID] = true
		}
		for _, u := range data.Users {
			if u.ReferredBy != "" {
				assert.True(t, ids[u.ReferredBy], "user %s refers to unknown %s", u.ID, u.ReferredBy)
			}
		}
	})

	t.Run("Unique IDs and mobiles", func(t *testing.T) {
		ids := map[string]bool{}
		mobiles := map[string]bool{}
		for _, u := range data.Users {
			assert.False(t, ids[u.ID], "duplicate id %s", u.ID)
			assert.False(t, mobiles[u.Mobile], "duplicate mobile %s", u.Mobile)
			ids[u.ID] = true
			mobiles[u.Mobile] = true
		}
	})

	t.Run("Orders reference existing handlers", func(t *testing.T) {
		require.NotEmpty(t, data.Orders)
		ids := map[string]bool{}
		for _, u := range data.Users {
			ids[u.ID] = true
		}
		for _, o := range data.Orders {
			assert.True(t, ids[o.CurrentHandlerID], "order %s has unknown handler %s", o.ID, o.CurrentHandlerID)
			assert.NotEmpty(t, o.BillNumber)
		}
	})

	t.Run("Payment requests reference existing users", func(t *testing.T) {
		require.NotEmpty(t, data.PaymentRequests)
		ids := map[string]bool{}
		for _, u := range data.Users {
			ids[u.ID] = true
		}
		for _, p := range data.PaymentRequests {
			assert.True(t, ids[p.UserID], "request %s has unknown user %s", p.ID, p.UserID)
			assert.Equal(t, domain.PaymentRequestStatusPending, p.Status)
		}
	})

	t.Run("Income settings have ten levels", func(t *testing.T) {
		require.NotNil(t, data.IncomeSettings)
		assert.Len(t, data.IncomeSettings.UplineLevels, 10)
		assert.Len(t, data.IncomeSettings.DownlineLevels, 10)
		assert.NotEmpty(t, data.IncomeSettings.ProductRates)
		assert.NotEmpty(t, data.IncomeSettings.RoleCommissions)
	})
}
