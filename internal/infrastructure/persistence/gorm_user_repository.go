package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/persistence/models"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(mapDBError(err), ErrDuplicate) {
			return errs.Invalid(errs.MsgUsernameTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) List(ctx context.Context) ([]*users.User, error) {
	var modelList []*models.UserModel
	if err := r.db.WithContext(ctx).Order("username asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, errs.NotFound(errs.MsgUserNotFound)
	}
	return r.first(ctx, "id = ?", userID)
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *gormUserRepository) first(ctx context.Context, where string, arg string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(errs.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"username":      model.Username,
		"password_hash": model.PasswordHash,
		"palette":       model.Palette,
		"theme":         model.Theme,
	})
	if result.Error != nil {
		if errors.Is(mapDBError(result.Error), ErrDuplicate) {
			return errs.Invalid(errs.MsgUsernameTaken)
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound(errs.MsgUserNotFound)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}
