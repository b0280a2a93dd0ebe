//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, credentials users.Credentials) (*users.User, error) {
	args := m.Called(ctx, credentials)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, credentials users.Credentials) (*users.User, error) {
	args := m.Called(ctx, credentials)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) ChangeTheme(ctx context.Context, userID string, theme users.Theme) error {
	args := m.Called(ctx, userID, theme)
	return args.Error(0)
}

func (m *MockUserService) ChangePalette(ctx context.Context, userID string, palette users.Palette) error {
	args := m.Called(ctx, userID, palette)
	return args.Error(0)
}

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetByID(ctx context.Context, productID string) (*products.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input products.ProductInput, ownerID string) (*products.Product, error) {
	args := m.Called(ctx, input, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) Edit(ctx context.Context, productID string, input products.ProductInput) (*products.Product, error) {
	args := m.Called(ctx, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, productID string) (*products.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, query *products.ProductQuery) (*products.ProductPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.ProductPage), args.Error(1)
}

func (m *MockProductService) Count(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) Buy(ctx context.Context, userID, productID string) (*products.Product, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) HasBought(ctx context.Context, userID, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductService) IsOwner(ctx context.Context, userID, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

// MockTransactionService is a mock implementation of TransactionService
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Create(ctx context.Context, buyerID, productID string) (*transactions.Transaction, error) {
	args := m.Called(ctx, buyerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transactions.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListByBuyer(ctx context.Context, buyerID string) ([]*transactions.Transaction, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transactions.Transaction), args.Error(1)
}
