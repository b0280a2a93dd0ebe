package transactions

import (
	"context"
)

// TransactionService defines methods for recording and listing purchases.
type TransactionService interface {
	// Create records a transaction outside a purchase.
	Create(ctx context.Context, buyerID, productID string) (*Transaction, error)

	// ListByBuyer returns the buyer's transactions, newest first, with product summaries.
	ListByBuyer(ctx context.Context, buyerID string) ([]*Transaction, error)
}

// TransactionRepository defines the interface for Transaction-related operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	ListByBuyer(ctx context.Context, buyerID string) ([]*Transaction, error)
}
