package database

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)

	for _, table := range []string{"measurements", "profile", "driver", "broker", "driver_details", "payments"} {
		var name string
		err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name).Error
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	_, err := Open(path)
	require.NoError(t, err)

	_, err = Open(path)
	require.NoError(t, err)
}

// A database created by an old app version lacks the columns added later; the
// additive migration must fill them in without touching existing data.
func TestAdditiveColumnMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, legacy.Exec(`
		CREATE TABLE measurements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			acr REAL NOT NULL,
			price_per_acre REAL NOT NULL,
			total REAL NOT NULL,
			owner_name TEXT NOT NULL,
			mobile TEXT,
			nic TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`).Error)
	require.NoError(t, legacy.Exec(`
		CREATE TABLE profile (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			farm_name TEXT NOT NULL,
			mobile TEXT,
			address TEXT,
			price_per_acre REAL NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`).Error)
	require.NoError(t, legacy.Exec(
		`INSERT INTO measurements (acr, price_per_acre, total, owner_name) VALUES (2.0, 19000, 38000, 'Sunil')`).Error)
	sqlDB, err := legacy.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err := Open(path)
	require.NoError(t, err)

	cols, err := tableColumns(db, "measurements")
	require.NoError(t, err)
	assert.True(t, cols["driver_name"])
	assert.True(t, cols["broker_name"])
	assert.True(t, cols["paid_amount"])

	cols, err = tableColumns(db, "profile")
	require.NoError(t, err)
	assert.True(t, cols["driver_commission"])
	assert.True(t, cols["broker_commission_or_amount"])
	assert.True(t, cols["selected_broker_name"])

	// old rows survive the upgrade
	var total float64
	require.NoError(t, db.Raw(`SELECT total FROM measurements WHERE owner_name = 'Sunil'`).Scan(&total).Error)
	assert.Equal(t, 38000.0, total)
}
