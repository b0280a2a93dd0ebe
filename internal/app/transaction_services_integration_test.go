//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_CreateAndList(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	owner := registerUser(t, services, "seller")
	buyer := registerUser(t, services, "buyer")

	product, err := services.ProductService.Create(ctx, products.ProductInput{Name: "Wallpaper pack", Price: 3, Image: "a.png"}, owner.ID)
	require.NoError(t, err)

	created, err := services.TransactionService.Create(ctx, buyer.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, created.Product.Name)

	history, err := services.TransactionService.ListByBuyer(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, created.ID, history[0].ID)
	assert.Equal(t, float64(3), history[0].Product.Price)

	_, err = services.TransactionService.Create(ctx, buyer.ID, uuid.NewString())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
