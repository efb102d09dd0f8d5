package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"pi-verify.backend/internal/domain/entities"
	domainerrors "pi-verify.backend/internal/domain/errors"
)

func approvedVerification(wallet, business string) *entities.BusinessVerification {
	return &entities.BusinessVerification{
		WalletAddress:     wallet,
		BusinessName:      business,
		ExternalUserID:    "ext-user-1",
		TotalTransactions: 320,
		UniqueWallets:     45,
		MeetsRequirements: true,
		Status:            entities.VerificationStatusApproved,
	}
}

func TestVerificationRepository_UpsertInsert(t *testing.T) {
	db := newTestDB(t)
	createBusinessVerificationTable(t, db)
	repo := NewVerificationRepository(db)

	stored, err := repo.Upsert(context.Background(), approvedVerification("GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H", "Acme Corporation"))
	require.NoError(t, err)

	assert.NotEqual(t, stored.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "Acme Corporation", stored.BusinessName)
	assert.Equal(t, 320, stored.TotalTransactions)
	assert.True(t, stored.MeetsRequirements)
	assert.False(t, stored.FailureReason.Valid)
	assert.Equal(t, entities.VerificationStatusApproved, stored.Status)
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestVerificationRepository_UpsertSameWalletKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	createBusinessVerificationTable(t, db)
	repo := NewVerificationRepository(db)
	wallet := "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"

	first, err := repo.Upsert(context.Background(), approvedVerification(wallet, "Acme Corporation"))
	require.NoError(t, err)

	// Re-verify with a different business name: same row, same id, new name.
	repo.now = func() time.Time { return first.UpdatedAt.Add(2 * time.Second) }
	second, err := repo.Upsert(context.Background(), approvedVerification(wallet, "Acme Holdings"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Holdings", second.BusinessName)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	_, total, err := repo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestVerificationRepository_UpsertOverwritesVerdict(t *testing.T) {
	db := newTestDB(t)
	createBusinessVerificationTable(t, db)
	repo := NewVerificationRepository(db)
	wallet := "WALLETWITHTENCHARS"

	_, err := repo.Upsert(context.Background(), approvedVerification(wallet, "Biz"))
	require.NoError(t, err)

	rejected := approvedVerification(wallet, "Biz")
	rejected.TotalTransactions = 60
	rejected.MeetsRequirements = false
	rejected.FailureReason = null.StringFrom("wallet has 60 transactions (minimum 100 required)")
	rejected.Status = entities.VerificationStatusRejected

	stored, err := repo.Upsert(context.Background(), rejected)
	require.NoError(t, err)

	assert.False(t, stored.MeetsRequirements)
	assert.Equal(t, entities.VerificationStatusRejected, stored.Status)
	assert.True(t, stored.FailureReason.Valid)
	assert.Equal(t, 60, stored.TotalTransactions)
}

func TestVerificationRepository_GetByWalletAddressNotFound(t *testing.T) {
	db := newTestDB(t)
	createBusinessVerificationTable(t, db)
	repo := NewVerificationRepository(db)

	_, err := repo.GetByWalletAddress(context.Background(), "NEVERVERIFIED")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVerificationRepository_UpsertMissingTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewVerificationRepository(db)

	_, err := repo.Upsert(context.Background(), approvedVerification("WALLETWITHTENCHARS", "Biz"))
	assert.Error(t, err)
}

func TestVerificationRepository_ListPagination(t *testing.T) {
	db := newTestDB(t)
	createBusinessVerificationTable(t, db)
	repo := NewVerificationRepository(db)

	wallets := []string{"WALLETAAAA1", "WALLETBBBB2", "WALLETCCCC3"}
	base := time.Now()
	for i, w := range wallets {
		offset := time.Duration(i) * time.Second
		repo.now = func() time.Time { return base.Add(offset) }
		_, err := repo.Upsert(context.Background(), approvedVerification(w, "Biz"))
		require.NoError(t, err)
	}

	page, total, err := repo.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "WALLETCCCC3", page[0].WalletAddress)
}
