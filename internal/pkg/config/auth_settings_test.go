//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *AuthSettings
		expectedError bool
	}{
		{
			name:          "valid settings",
			settings:      &AuthSettings{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour, BcryptCost: 9},
			expectedError: false,
		},
		{
			name:          "zero bcrypt cost uses library default",
			settings:      &AuthSettings{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour},
			expectedError: false,
		},
		{
			name:          "missing secret",
			settings:      &AuthSettings{TokenTTL: time.Hour},
			expectedError: true,
		},
		{
			name:          "short secret",
			settings:      &AuthSettings{JWTSecret: "short", TokenTTL: time.Hour},
			expectedError: true,
		},
		{
			name:          "missing ttl",
			settings:      &AuthSettings{JWTSecret: "0123456789abcdef"},
			expectedError: true,
		},
		{
			name:          "bcrypt cost too high",
			settings:      &AuthSettings{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour, BcryptCost: 40},
			expectedError: true,
		},
		{
			name:          "negative prune interval",
			settings:      &AuthSettings{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour, BlacklistPruneInterval: -time.Second},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogSettingsValidation(t *testing.T) {
	assert.NoError(t, (&CatalogSettings{ProductsPerPage: DefaultProductsPerPage}).Validate())
	assert.Error(t, (&CatalogSettings{ProductsPerPage: 0}).Validate())
	assert.Error(t, (&CatalogSettings{ProductsPerPage: 101}).Validate())
}
