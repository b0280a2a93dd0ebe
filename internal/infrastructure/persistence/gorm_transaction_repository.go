package persistence

import (
	"context"
	"fmt"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/persistence/models"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormTransactionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository implementation
func NewGormTransactionRepository(db *gorm.DB, logger logger.Logger) (transactions.TransactionRepository, error) {
	return &gormTransactionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTransactionRepository) Create(ctx context.Context, transaction *transactions.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(transaction)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	r.logger.Info("Created transaction with id ", transaction.ID)
	return nil
}

func (r *gormTransactionRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*transactions.Transaction, error) {
	if _, err := uuid.Parse(buyerID); err != nil {
		return []*transactions.Transaction{}, nil
	}

	var modelList []*models.TransactionModel
	err := r.db.WithContext(ctx).
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "price")
		}).
		Where("buyer_id = ?", buyerID).
		Order("date_time_created desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	domainList := make([]*transactions.Transaction, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
