package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/google/uuid"
)

// userService implements the UserService interface for accounts and preferences
type userService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	logger   logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(userRepo users.UserRepository, hasher users.PasswordHasher, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Register stores a new user with default preferences.
func (s *userService) Register(ctx context.Context, credentials users.Credentials) (*users.User, error) {
	credentials.Normalize()
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		return nil, errs.Invalid(errs.MsgUsernameTaken)
	case !errs.Is(err, errs.KindNotFound):
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := s.hasher.Hash(credentials.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:              uuid.NewString(),
		Username:        credentials.Username,
		PasswordHash:    hash,
		Palette:         users.DefaultPalette,
		Theme:           users.DefaultTheme,
		DateTimeCreated: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered user ", user.Username)
	return user, nil
}

// Login returns the stored user when the password matches.
func (s *userService) Login(ctx context.Context, credentials users.Credentials) (*users.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(credentials.Username))
	if err != nil {
		if errs.Is(err, errs.KindNotFound) {
			return nil, errs.Unauthorized(errs.MsgWrongCredentials)
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, strings.TrimSpace(credentials.Password)); err != nil {
		s.logger.Warn("Failed login attempt for user ", user.Username)
		return nil, errs.Unauthorized(errs.MsgWrongCredentials)
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *userService) ChangeTheme(ctx context.Context, userID string, theme users.Theme) error {
	if err := users.ValidateTheme(theme); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Theme = theme
	return s.userRepo.UpdateByID(ctx, user)
}

func (s *userService) ChangePalette(ctx context.Context, userID string, palette users.Palette) error {
	if err := users.ValidatePalette(palette); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Palette = palette
	return s.userRepo.UpdateByID(ctx, user)
}
