//go:build unit
// +build unit

package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid", Invalid("Price is required"), KindInvalid},
		{"unauthorized", Unauthorized(MsgInvalidToken), KindUnauthorized},
		{"forbidden", Forbidden(MsgNotProductOwner), KindForbidden},
		{"not found", NotFound(MsgProductNotFound), KindNotFound},
		{"wrapped", fmt.Errorf("buy: %w", NotFound(MsgUserNotFound)), KindNotFound},
		{"plain error", errors.New("connection refused"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessagesOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, MessagesOf(Invalid("a", "b")))
	assert.Equal(t, []string{MsgRequestFailed}, MessagesOf(errors.New("db down")))
	assert.Equal(t, []string{MsgRequestFailed}, MessagesOf(Internal(errors.New("db down"))))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("db down")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Request failed: db down", err.Error())
	assert.True(t, Is(err, KindInternal))
	assert.False(t, Is(err, KindNotFound))
}
