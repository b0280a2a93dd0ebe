//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type:   PostgresDbType,
				DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				DBName: "ecommerce",
			},
			expectedError: false,
		},
		{
			name:          "sqlite without dsn falls back to memory",
			settings:      &DatabaseSettings{Type: SqliteDbType},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: "file:ecommerce.db",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mongodb",
				DSN:  "mongodb://127.0.0.1/ecommerce",
			},
			expectedError: true,
		},
		{
			name: "postgres without dsn",
			settings: &DatabaseSettings{
				Type:   PostgresDbType,
				DBName: "ecommerce",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
