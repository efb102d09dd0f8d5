package usecases

import (
	"context"

	"pi-verify.backend/internal/domain/entities"
)

// MetricsProvider supplies wallet activity metrics. The production
// implementation would query the Pi Network ledger; the handler and
// evaluator only depend on this interface.
type MetricsProvider interface {
	DeriveMetrics(ctx context.Context, walletAddress string) (entities.ActivityMetrics, error)
}

// HashMetricsProvider is a deterministic stand-in for a real ledger client.
// Metrics are a pure function of the wallet address string, so repeated
// verifications of a wallet reproduce the same verdict. Two distinct wallets
// can collide on derived metrics; the mock makes no uniqueness promise.
type HashMetricsProvider struct{}

// NewHashMetricsProvider creates the mock metrics provider
func NewHashMetricsProvider() *HashMetricsProvider {
	return &HashMetricsProvider{}
}

// DeriveMetrics maps the wallet address onto bounded activity metrics
func (p *HashMetricsProvider) DeriveMetrics(_ context.Context, walletAddress string) (entities.ActivityMetrics, error) {
	sum := 0
	for _, r := range walletAddress {
		sum += int(r)
	}

	return entities.ActivityMetrics{
		TotalTransactions: sum%totalTransactionsSpan + totalTransactionsFloor,
		UniqueWallets:     sum%uniqueWalletsSpan + uniqueWalletsFloor,
	}, nil
}
