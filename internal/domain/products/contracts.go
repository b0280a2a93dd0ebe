package products

import (
	"context"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
)

// ProductService defines catalog and purchase operations.
type ProductService interface {
	// GetByID returns errs.NotFound for unknown or malformed ids.
	GetByID(ctx context.Context, productID string) (*Product, error)

	// Create validates the input, rounds the price and stores the product under ownerID.
	Create(ctx context.Context, input ProductInput, ownerID string) (*Product, error)

	// Edit replaces name and price, and the image when one is given.
	Edit(ctx context.Context, productID string, input ProductInput) (*Product, error)

	// Delete removes the product together with its purchases and transactions.
	Delete(ctx context.Context, productID string) (*Product, error)

	// List returns the requested page of matching products and the total number of matches.
	List(ctx context.Context, query *ProductQuery) (*ProductPage, error)

	// Count returns the number of products whose name contains name.
	Count(ctx context.Context, name string) (int64, error)

	// Buy records a purchase and its transaction atomically.
	Buy(ctx context.Context, userID, productID string) (*Product, error)

	// HasBought is false for unknown users.
	HasBought(ctx context.Context, userID, productID string) (bool, error)

	// IsOwner returns errs.NotFound for unknown products.
	IsOwner(ctx context.Context, userID, productID string) (bool, error)
}

// ProductRepository defines the interface for Product-related operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID string) (*Product, error)
	List(ctx context.Context, query *ProductQuery) ([]*Product, error)
	Count(ctx context.Context, query *ProductQuery) (int64, error)
	UpdateByID(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, productID string) error

	// Purchase re-checks both parties and writes the purchase and its transaction in one database transaction.
	Purchase(ctx context.Context, userID, productID string) (*transactions.Transaction, error)
	HasBought(ctx context.Context, userID, productID string) (bool, error)
}
