// pkg/ledgererr/errors.go

package ledgererr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel kinds for store failures. Callers test with errors.Is and decide
// how to surface them; the store never swallows an error.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateName = errors.New("name already exists")
	ErrValidation    = errors.New("invalid input")
	ErrStorage       = errors.New("storage unavailable")
)

// FromGorm translates a gorm/sqlite error into one of the sentinel kinds.
// The glebarez driver reports unique violations as
// "UNIQUE constraint failed: <table>.<column>".
func FromGorm(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return ErrDuplicateName
	default:
		return err
	}
}
