//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usernameHolder struct {
	Username string `validate:"username"`
}

func TestUsernameValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		username string
		valid    bool
	}{
		{"ryota", true},
		{"Ryota123", true},
		{"a1", true},
		{"1ryota", false},
		{"ryo_ta", false},
		{"ryo ta", false},
		{"r", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := validate.Struct(usernameHolder{Username: tt.username})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
