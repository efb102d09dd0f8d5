package repositories

import (
	"context"

	"pi-verify.backend/internal/domain/entities"
)

// VerificationRepository defines verification record persistence keyed by
// wallet address.
type VerificationRepository interface {
	// Upsert inserts the record, or replaces all mutable fields of the
	// existing row for the same wallet address. The persisted row, with its
	// store-assigned ID and refreshed UpdatedAt, is returned.
	Upsert(ctx context.Context, verification *entities.BusinessVerification) (*entities.BusinessVerification, error)
	GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.BusinessVerification, error)
	List(ctx context.Context, offset, limit int) ([]*entities.BusinessVerification, int64, error)
}
