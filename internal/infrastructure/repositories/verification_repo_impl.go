package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pi-verify.backend/internal/domain/entities"
	domainerrors "pi-verify.backend/internal/domain/errors"
	"pi-verify.backend/internal/infrastructure/models"
)

// VerificationRepository implements verification record persistence on gorm.
// wallet_address carries a unique index, so the upsert is a single atomic
// statement and concurrent writes to the same wallet serialize in the store.
type VerificationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db, now: time.Now}
}

// Upsert inserts or replaces the record for the wallet address, preserving
// the ID and CreatedAt of an existing row and refreshing UpdatedAt.
func (r *VerificationRepository) Upsert(ctx context.Context, verification *entities.BusinessVerification) (*entities.BusinessVerification, error) {
	now := r.now()
	m := models.BusinessVerification{
		ID:                uuid.New(),
		WalletAddress:     verification.WalletAddress,
		BusinessName:      verification.BusinessName,
		ExternalUserID:    verification.ExternalUserID,
		TotalTransactions: verification.TotalTransactions,
		UniqueWallets:     verification.UniqueWallets,
		MeetsRequirements: verification.MeetsRequirements,
		FailureReason:     verification.FailureReason,
		Status:            string(verification.Status),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "wallet_address"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"business_name",
			"external_user_id",
			"total_transactions",
			"unique_wallets",
			"meets_requirements",
			"failure_reason",
			"status",
			"updated_at",
		}),
	}).Create(&m).Error
	if err != nil {
		return nil, err
	}

	// On the update path the generated ID above was discarded, so read the
	// row back to return the persisted identity.
	return r.GetByWalletAddress(ctx, verification.WalletAddress)
}

// GetByWalletAddress gets the verification record for a wallet
func (r *VerificationRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.BusinessVerification, error) {
	var m models.BusinessVerification
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// List returns verification records newest first, plus the total count
func (r *VerificationRepository) List(ctx context.Context, offset, limit int) ([]*entities.BusinessVerification, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.BusinessVerification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Order("updated_at DESC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var ms []models.BusinessVerification
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	verifications := make([]*entities.BusinessVerification, 0, len(ms))
	for _, m := range ms {
		model := m
		verifications = append(verifications, toEntity(&model))
	}
	return verifications, total, nil
}

func toEntity(m *models.BusinessVerification) *entities.BusinessVerification {
	return &entities.BusinessVerification{
		ID:                m.ID,
		WalletAddress:     m.WalletAddress,
		BusinessName:      m.BusinessName,
		ExternalUserID:    m.ExternalUserID,
		TotalTransactions: m.TotalTransactions,
		UniqueWallets:     m.UniqueWallets,
		MeetsRequirements: m.MeetsRequirements,
		FailureReason:     m.FailureReason,
		Status:            entities.VerificationStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
