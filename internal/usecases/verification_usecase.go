package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"
	"pi-verify.backend/internal/domain/entities"
	domainerrors "pi-verify.backend/internal/domain/errors"
	"pi-verify.backend/internal/domain/repositories"
	"pi-verify.backend/pkg/utils"
)

// Verdict is the outcome of the eligibility rule
type Verdict struct {
	MeetsRequirements bool
	FailureReason     null.String
}

// VerificationUsecase handles business wallet verification
type VerificationUsecase struct {
	verificationRepo repositories.VerificationRepository
	metrics          MetricsProvider
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(verificationRepo repositories.VerificationRepository, metrics MetricsProvider) *VerificationUsecase {
	return &VerificationUsecase{
		verificationRepo: verificationRepo,
		metrics:          metrics,
	}
}

// ValidateVerifyInput checks the request fields and returns the trimmed
// input. Rules are checked in order; the first violation wins.
func ValidateVerifyInput(input *entities.VerifyBusinessInput) (*entities.VerifyBusinessInput, *domainerrors.AppError) {
	wallet := strings.TrimSpace(input.WalletAddress)
	if len(wallet) < MinWalletAddressLength {
		return nil, domainerrors.BadRequest("invalid wallet address format")
	}

	business := strings.TrimSpace(input.BusinessName)
	if business == "" {
		return nil, domainerrors.BadRequest("business name required")
	}

	externalUser := strings.TrimSpace(input.ExternalUserID)
	if externalUser == "" {
		return nil, domainerrors.BadRequest("external user id required")
	}

	return &entities.VerifyBusinessInput{
		WalletAddress:  wallet,
		BusinessName:   business,
		ExternalUserID: externalUser,
	}, nil
}

// EvaluateEligibility applies the fixed eligibility thresholds to the
// derived metrics. Pure and total.
func EvaluateEligibility(m entities.ActivityMetrics) Verdict {
	var deficits []string
	if m.TotalTransactions < MinTotalTransactions {
		deficits = append(deficits, fmt.Sprintf("wallet has %d transactions (minimum %d required)", m.TotalTransactions, MinTotalTransactions))
	}
	if m.UniqueWallets < MinUniqueWallets {
		deficits = append(deficits, fmt.Sprintf("wallet has %d unique counterparties (minimum %d required)", m.UniqueWallets, MinUniqueWallets))
	}

	if len(deficits) == 0 {
		return Verdict{MeetsRequirements: true}
	}
	return Verdict{
		MeetsRequirements: false,
		FailureReason:     null.StringFrom(strings.Join(deficits, " and ")),
	}
}

// VerifyBusiness validates the request, derives metrics, evaluates the
// eligibility rule and upserts the verdict keyed by wallet address.
func (u *VerificationUsecase) VerifyBusiness(ctx context.Context, input *entities.VerifyBusinessInput) (*entities.BusinessVerification, error) {
	trimmed, appErr := ValidateVerifyInput(input)
	if appErr != nil {
		return nil, appErr
	}

	metrics, err := u.metrics.DeriveMetrics(ctx, trimmed.WalletAddress)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	verdict := EvaluateEligibility(metrics)
	status := entities.VerificationStatusApproved
	if !verdict.MeetsRequirements {
		status = entities.VerificationStatusRejected
	}

	stored, err := u.verificationRepo.Upsert(ctx, &entities.BusinessVerification{
		WalletAddress:     trimmed.WalletAddress,
		BusinessName:      trimmed.BusinessName,
		ExternalUserID:    trimmed.ExternalUserID,
		TotalTransactions: metrics.TotalTransactions,
		UniqueWallets:     metrics.UniqueWallets,
		MeetsRequirements: verdict.MeetsRequirements,
		FailureReason:     verdict.FailureReason,
		Status:            status,
	})
	if err != nil {
		return nil, domainerrors.StoreError(err)
	}

	return stored, nil
}

// GetVerification returns the stored record for a wallet address
func (u *VerificationUsecase) GetVerification(ctx context.Context, walletAddress string) (*entities.BusinessVerification, error) {
	wallet := strings.TrimSpace(walletAddress)
	if len(wallet) < MinWalletAddressLength {
		return nil, domainerrors.BadRequest("invalid wallet address format")
	}

	verification, err := u.verificationRepo.GetByWalletAddress(ctx, wallet)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("wallet has not been verified")
		}
		return nil, domainerrors.StoreError(err)
	}
	return verification, nil
}

// ListVerifications returns a page of stored records, newest first
func (u *VerificationUsecase) ListVerifications(ctx context.Context, page, limit int) ([]*entities.BusinessVerification, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)

	verifications, total, err := u.verificationRepo.List(ctx, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.StoreError(err)
	}
	if verifications == nil {
		verifications = []*entities.BusinessVerification{}
	}

	return verifications, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
