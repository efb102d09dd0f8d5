package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus is the stored outcome of a business verification
type VerificationStatus string

const (
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// BusinessVerification is the durable verification record. Exactly one row
// exists per wallet address; re-verifying overwrites everything except ID.
type BusinessVerification struct {
	ID                uuid.UUID          `json:"id"`
	WalletAddress     string             `json:"walletAddress"`
	BusinessName      string             `json:"businessName"`
	ExternalUserID    string             `json:"externalUserId"`
	TotalTransactions int                `json:"totalTransactions"`
	UniqueWallets     int                `json:"uniqueWallets"`
	MeetsRequirements bool               `json:"meetsRequirements"`
	FailureReason     null.String        `json:"failureReason"`
	Status            VerificationStatus `json:"verificationStatus"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// VerifyBusinessInput represents the inbound verification request
type VerifyBusinessInput struct {
	WalletAddress  string `json:"walletAddress"`
	BusinessName   string `json:"businessName"`
	ExternalUserID string `json:"externalUserId"`
}

// ActivityMetrics holds the wallet activity numbers the eligibility rule
// is evaluated against.
type ActivityMetrics struct {
	TotalTransactions int `json:"totalTransactions"`
	UniqueWallets     int `json:"uniqueWallets"`
}
