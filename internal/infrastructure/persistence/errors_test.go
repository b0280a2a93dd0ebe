//go:build unit
// +build unit

package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapDBError(t *testing.T) {
	assert.NoError(t, mapDBError(nil))
	assert.ErrorIs(t, mapDBError(gorm.ErrDuplicatedKey), ErrDuplicate)
	assert.ErrorIs(t, mapDBError(fmt.Errorf("wrapped: %w", gorm.ErrDuplicatedKey)), ErrDuplicate)
	assert.ErrorIs(t, mapDBError(errors.New("UNIQUE constraint failed: users.username")), ErrDuplicate)
	assert.ErrorIs(t, mapDBError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`)), ErrDuplicate)

	other := errors.New("connection refused")
	assert.Equal(t, other, mapDBError(other))
}
