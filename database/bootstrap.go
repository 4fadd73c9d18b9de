// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"landledger/entities"
)

// Open opens (or creates) the ledger database file and brings the schema up
// to date. The additive column migration runs BEFORE AutoMigrate so databases
// created by old app versions upgrade the same way they always have.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// one user, one writer; a single connection keeps :memory: databases whole
	// and makes session pragmas stick
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	// cascade deletes on payments need foreign keys enforced
	if err := db.Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := migrateAdditiveColumns(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Profile{},
		&entities.Driver{},
		&entities.Broker{},
		&entities.DriverDetail{},
		&entities.Measurement{},
		&entities.Payment{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}

// OpenSQLite is the fail-fast variant used from main.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	return db
}

// Columns added to tables after the first release. Each ALTER is
// independently idempotent: there is no version table, a column either
// exists or it is added.
var additiveColumns = map[string][]struct{ name, ddl string }{
	"measurements": {
		{"driver_name", `ALTER TABLE measurements ADD COLUMN driver_name TEXT`},
		{"broker_name", `ALTER TABLE measurements ADD COLUMN broker_name TEXT`},
		{"paid_amount", `ALTER TABLE measurements ADD COLUMN paid_amount REAL DEFAULT 0`},
	},
	"profile": {
		{"driver_commission", `ALTER TABLE profile ADD COLUMN driver_commission REAL`},
		{"broker_commission_or_amount", `ALTER TABLE profile ADD COLUMN broker_commission_or_amount REAL`},
		{"selected_broker_name", `ALTER TABLE profile ADD COLUMN selected_broker_name TEXT`},
	},
}

func migrateAdditiveColumns(db *gorm.DB) error {
	for table, cols := range additiveColumns {
		var tbl string
		if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&tbl).Error; err != nil {
			return fmt.Errorf("check table exist: %w", err)
		}
		if tbl == "" {
			// fresh DB, AutoMigrate will create the full table
			continue
		}

		existing, err := tableColumns(db, table)
		if err != nil {
			return err
		}
		for _, c := range cols {
			if existing[c.name] {
				continue
			}
			if err := db.Exec(c.ddl).Error; err != nil {
				if strings.Contains(err.Error(), "duplicate column name") {
					continue
				}
				return fmt.Errorf("add column %s.%s: %w", table, c.name, err)
			}
		}
	}
	return nil
}

func tableColumns(db *gorm.DB, table string) (map[string]bool, error) {
	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(fmt.Sprintf(`PRAGMA table_info(%s)`, table)).Scan(&cols).Error; err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	out := make(map[string]bool, len(cols))
	for _, c := range cols {
		out[strings.ToLower(c.Name)] = true
	}
	return out, nil
}
