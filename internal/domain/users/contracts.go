package users

import (
	"context"
)

// UserService defines account and preference operations.
type UserService interface {
	// Register trims and validates the credentials, then stores a new user with a hashed password.
	Register(ctx context.Context, credentials Credentials) (*User, error)

	// Login returns the stored user when the credentials match.
	// An unknown username and a wrong password fail identically.
	Login(ctx context.Context, credentials Credentials) (*User, error)

	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	ChangeTheme(ctx context.Context, userID string, theme Theme) error
	ChangePalette(ctx context.Context, userID string, palette Palette) error
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
}

// PasswordHasher hashes passwords and checks them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}
