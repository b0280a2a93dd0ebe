package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AuthSettings configures token signing, password hashing and the logout denylist
type AuthSettings struct {
	JWTSecret              string        `mapstructure:"jwt_secret" validate:"required,min=8"`
	TokenTTL               time.Duration `mapstructure:"token_ttl" validate:"required"`
	BcryptCost             int           `mapstructure:"bcrypt_cost"`
	BlacklistPruneInterval time.Duration `mapstructure:"blacklist_prune_interval"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}

	if s.BcryptCost != 0 && (s.BcryptCost < bcrypt.MinCost || s.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if s.BlacklistPruneInterval < 0 {
		return fmt.Errorf("blacklist prune interval must not be negative")
	}

	return nil
}
