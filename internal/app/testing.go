//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/persistence"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/security"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestProductsPerPage keeps pagination assertions small
const TestProductsPerPage = 2

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService        users.UserService
	ProductService     products.ProductService
	TransactionService transactions.TransactionService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err, "Failed to create password hasher")

	userService, err := NewUserService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err, "Failed to create user service")

	productService, err := NewProductService(dbContext.ProductRepo, dbContext.UserRepo, TestProductsPerPage, logger)
	require.NoError(t, err, "Failed to create product service")

	transactionService, err := NewTransactionService(dbContext.TransactionRepo, dbContext.ProductRepo, logger)
	require.NoError(t, err, "Failed to create transaction service")

	return &TestServices{
		UserService:        userService,
		ProductService:     productService,
		TransactionService: transactionService,
		DBContext:          dbContext,
	}
}
