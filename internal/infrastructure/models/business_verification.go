package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type BusinessVerification struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	WalletAddress     string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	BusinessName      string      `gorm:"type:varchar(255);not null"`
	ExternalUserID    string      `gorm:"type:varchar(255);not null"`
	TotalTransactions int         `gorm:"not null"`
	UniqueWallets     int         `gorm:"not null"`
	MeetsRequirements bool        `gorm:"not null"`
	FailureReason     null.String `gorm:"type:text"`
	Status            string      `gorm:"type:varchar(20);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (BusinessVerification) TableName() string {
	return "business_verifications"
}
