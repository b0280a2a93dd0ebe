//go:build integration
// +build integration

package persistence

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestPasswordHash is a placeholder bcrypt hash for fixtures that never log in.
const TestPasswordHash = "$2a$09$C6UzMDM.H6dfI/f/IKcEeO5b1Tn6Q9fDeK4l0XzzTzQCWbJQNfmuK"

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	UserRepo        users.UserRepository
	ProductRepo     products.ProductRepository
	TransactionRepo transactions.TransactionRepository
}

// postgresTestDSN is the server DSN, without dbname, used by PostgreSQL tests.
// ECOMMERCE_TEST_POSTGRES_DSN overrides the local default.
func postgresTestDSN() string {
	if dsn := os.Getenv("ECOMMERCE_TEST_POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	return "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  sqliteInMemoryDSN,
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		serverDSN := postgresTestDSN()
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    serverDSN,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(serverDSN+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	logger := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(settings, logger)
	if err != nil && dbType == config.PostgresDbType {
		t.Skipf("PostgreSQL unavailable: %v", err)
	}
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	productRepo, err := NewGormProductRepository(db, logger)
	require.NoError(t, err, "Failed to create product repository")

	transactionRepo, err := NewGormTransactionRepository(db, logger)
	require.NoError(t, err, "Failed to create transaction repository")

	return &TestContext{
		DB:              db,
		UserRepo:        userRepo,
		ProductRepo:     productRepo,
		TransactionRepo: transactionRepo,
	}
}

// CreateTestUser stores a user with default preferences
func CreateTestUser(t *testing.T, ctx *TestContext, username string) *users.User {
	t.Helper()

	user := &users.User{
		ID:              uuid.NewString(),
		Username:        username,
		PasswordHash:    TestPasswordHash,
		Palette:         users.DefaultPalette,
		Theme:           users.DefaultTheme,
		DateTimeCreated: time.Now().UTC(),
	}
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	return user
}

// CreateTestProduct stores a product owned by owner
func CreateTestProduct(t *testing.T, ctx *TestContext, owner *users.User, name string, price float64) *products.Product {
	t.Helper()

	product := &products.Product{
		ID:              uuid.NewString(),
		Name:            name,
		Price:           price,
		Image:           "https://example.com/" + strings.ReplaceAll(name, " ", "-") + ".png",
		OwnerID:         owner.ID,
		DateTimeCreated: time.Now().UTC(),
	}
	require.NoError(t, ctx.ProductRepo.Create(context.Background(), product))
	return product
}
