package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"pi-verify.backend/internal/domain/entities"
)

// MockVerificationRepository mocks repositories.VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Upsert(ctx context.Context, verification *entities.BusinessVerification) (*entities.BusinessVerification, error) {
	args := m.Called(ctx, verification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessVerification), args.Error(1)
}

func (m *MockVerificationRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.BusinessVerification, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessVerification), args.Error(1)
}

func (m *MockVerificationRepository) List(ctx context.Context, offset, limit int) ([]*entities.BusinessVerification, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.BusinessVerification), args.Get(1).(int64), args.Error(2)
}

// MockMetricsProvider mocks usecases.MetricsProvider
type MockMetricsProvider struct {
	mock.Mock
}

func (m *MockMetricsProvider) DeriveMetrics(ctx context.Context, walletAddress string) (entities.ActivityMetrics, error) {
	args := m.Called(ctx, walletAddress)
	return args.Get(0).(entities.ActivityMetrics), args.Error(1)
}
