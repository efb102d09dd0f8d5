package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createBusinessVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE business_verifications (
		id TEXT PRIMARY KEY,
		wallet_address TEXT NOT NULL UNIQUE,
		business_name TEXT NOT NULL,
		external_user_id TEXT NOT NULL,
		total_transactions INTEGER NOT NULL,
		unique_wallets INTEGER NOT NULL,
		meets_requirements BOOLEAN NOT NULL,
		failure_reason TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
