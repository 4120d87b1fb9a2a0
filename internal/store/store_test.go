package store

import (
	"testing"

	"github.com/glebarez/sqlite" // Pure-Go SQLite driver for GORM, test only
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kassa/internal/domain"
)

// newTestDB opens an in-memory SQLite database with the ledger schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, or the pool would hand out fresh empty memory DBs
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Transaction{}))
	return db
}
