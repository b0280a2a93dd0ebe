package app

import (
	"context"
	"fmt"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/google/uuid"
)

// productService implements the ProductService interface for the catalog and purchases
type productService struct {
	productRepo     products.ProductRepository
	userRepo        users.UserRepository
	productsPerPage int
	logger          logger.Logger
}

// NewProductService creates a new productService instance.
// productsPerPage is the page size used when a paginated query sets no limit.
func NewProductService(productRepo products.ProductRepository, userRepo users.UserRepository, productsPerPage int, logger logger.Logger) (products.ProductService, error) {
	if productsPerPage <= 0 {
		productsPerPage = config.DefaultProductsPerPage
	}
	return &productService{
		productRepo:     productRepo,
		userRepo:        userRepo,
		productsPerPage: productsPerPage,
		logger:          logger,
	}, nil
}

func (s *productService) GetByID(ctx context.Context, productID string) (*products.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

func (s *productService) Create(ctx context.Context, input products.ProductInput, ownerID string) (*products.Product, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	product := &products.Product{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Price:           products.RoundPrice(input.Price),
		Image:           input.Image,
		OwnerID:         ownerID,
		DateTimeCreated: time.Now().UTC(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) Edit(ctx context.Context, productID string, input products.ProductInput) (*products.Product, error) {
	input.Normalize()
	if err := input.ValidateEdit(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = products.RoundPrice(input.Price)
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := s.productRepo.UpdateByID(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, productID string) (*products.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.DeleteByID(ctx, productID); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, query *products.ProductQuery) (*products.ProductPage, error) {
	if query == nil {
		query = products.NewProductQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.Paginated() && query.Limit == 0 {
		query.Limit = s.productsPerPage
	}

	list, err := s.productRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, query)
	if err != nil {
		return nil, err
	}

	return &products.ProductPage{Products: list, Total: total}, nil
}

func (s *productService) Count(ctx context.Context, name string) (int64, error) {
	return s.productRepo.Count(ctx, &products.ProductQuery{Name: name})
}

// Buy returns the purchased product.
func (s *productService) Buy(ctx context.Context, userID, productID string) (*products.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	transaction, err := s.productRepo.Purchase(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Recorded transaction %s for product %s", transaction.ID, product.ID))
	return product, nil
}

func (s *productService) HasBought(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.productRepo.HasBought(ctx, userID, productID)
}

func (s *productService) IsOwner(ctx context.Context, userID, productID string) (bool, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return false, err
	}
	return userID != "" && product.OwnerID == userID, nil
}
