//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionSqliteRepository_ListByBuyerNewestFirst(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	owner := CreateTestUser(t, ctx, "seller")
	buyer := CreateTestUser(t, ctx, "buyer")
	older := CreateTestProduct(t, ctx, owner, "Wallpaper pack", 4.99)
	newer := CreateTestProduct(t, ctx, owner, "Icon pack", 2)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, productID := range []string{older.ID, newer.ID} {
		created := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, ctx.TransactionRepo.Create(context.Background(), &transactions.Transaction{
			ID:              uuid.NewString(),
			BuyerID:         buyer.ID,
			ProductID:       productID,
			DateTimeCreated: created,
			DateTimeUpdated: created,
		}))
	}

	history, err := ctx.TransactionRepo.ListByBuyer(context.Background(), buyer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, newer.ID, history[0].ProductID)
	require.NotNil(t, history[0].Product)
	assert.Equal(t, "Icon pack", history[0].Product.Name)
	assert.Equal(t, float64(2), history[0].Product.Price)
	assert.Equal(t, older.ID, history[1].ProductID)

	empty, err := ctx.TransactionRepo.ListByBuyer(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTransactionSqliteRepository_CreateRejectsInvalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.TransactionRepo.Create(context.Background(), &transactions.Transaction{ID: "bad"})
	assert.Error(t, err)
}
