package app

import (
	"context"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/google/uuid"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	transactionRepo transactions.TransactionRepository
	productRepo     products.ProductRepository
	logger          logger.Logger
}

// NewTransactionService creates a new transactionService instance
func NewTransactionService(transactionRepo transactions.TransactionRepository, productRepo products.ProductRepository, logger logger.Logger) (transactions.TransactionService, error) {
	return &transactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		logger:          logger,
	}, nil
}

func (s *transactionService) Create(ctx context.Context, buyerID, productID string) (*transactions.Transaction, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transaction := &transactions.Transaction{
		ID:        uuid.NewString(),
		BuyerID:   buyerID,
		ProductID: product.ID,
		Product: &transactions.ProductSummary{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		},
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *transactionService) ListByBuyer(ctx context.Context, buyerID string) ([]*transactions.Transaction, error) {
	return s.transactionRepo.ListByBuyer(ctx, buyerID)
}
