package usecases

// Eligibility thresholds
const (
	MinTotalTransactions = 100
	MinUniqueWallets     = 10
)

// Mock metric derivation bounds: totalTransactions lands in [50, 549] and
// uniqueWallets in [10, 159].
const (
	totalTransactionsSpan  = 500
	totalTransactionsFloor = 50
	uniqueWalletsSpan      = 150
	uniqueWalletsFloor     = 10
)

// MinWalletAddressLength is the minimum accepted wallet address length
// after trimming.
const MinWalletAddressLength = 10
