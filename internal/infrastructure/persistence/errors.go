package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// mapDBError maps unique-constraint violations from any driver to ErrDuplicate.
// Other errors pass through unchanged.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	le := strings.ToLower(err.Error())
	// Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") {
		return ErrDuplicate
	}
	return err
}
