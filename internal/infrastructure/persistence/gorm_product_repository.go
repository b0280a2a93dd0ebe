package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/persistence/models"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the ORDER BY expression for each sort option.
var sortColumns = map[string]string{
	products.SortByName:  "LOWER(name)",
	products.SortByPrice: "price",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (products.ProductRepository, error) {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *products.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Info("Created product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, productID string) (*products.Product, error) {
	model, err := findProduct(r.db.WithContext(ctx), productID)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) List(ctx context.Context, query *products.ProductQuery) ([]*products.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dbQuery := filterProducts(r.db.WithContext(ctx).Model(&models.ProductModel{}), query)

	if column, ok := sortColumns[query.SortBy]; ok {
		order := query.SortOrder
		if order == "" {
			order = products.SortOrderAsc
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", column, order))
	}
	dbQuery = dbQuery.Order("date_time_created asc").Order("id asc")

	if query.Paginated() {
		dbQuery = dbQuery.Limit(query.Limit).Offset(query.Offset())
	}

	var modelList []*models.ProductModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	domainList := make([]*products.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormProductRepository) Count(ctx context.Context, query *products.ProductQuery) (int64, error) {
	var total int64
	dbQuery := filterProducts(r.db.WithContext(ctx).Model(&models.ProductModel{}), query)
	if err := dbQuery.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

func (r *gormProductRepository) UpdateByID(ctx context.Context, product *products.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":  product.Name,
		"price": product.Price,
		"image": product.Image,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound(errs.MsgProductNotFound)
	}

	r.logger.Info("Updated product with id ", product.ID)
	return nil
}

// DeleteByID removes the product, its purchases and its transactions together.
func (r *gormProductRepository) DeleteByID(ctx context.Context, productID string) error {
	if _, err := uuid.Parse(productID); err != nil {
		return errs.NotFound(errs.MsgProductNotFound)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.PurchaseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete purchases: %w", err)
		}
		if err := tx.Where("product_id = ?", productID).Delete(&models.TransactionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}

		result := tx.Where("id = ?", productID).Delete(&models.ProductModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete product: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NotFound(errs.MsgProductNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted product with id ", productID)
	return nil
}

// Purchase runs every check and write inside one database transaction.
func (r *gormProductRepository) Purchase(ctx context.Context, userID, productID string) (*transactions.Transaction, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, errs.NotFound(errs.MsgUserNotFound)
	}

	var record *transactions.Transaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := findProduct(tx, productID)
		if err != nil {
			return err
		}

		var buyer models.UserModel
		if err := tx.Where("id = ?", userID).First(&buyer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound(errs.MsgUserNotFound)
			}
			return fmt.Errorf("failed to fetch user: %w", err)
		}

		if product.OwnerID == buyer.ID {
			return errs.Forbidden(errs.MsgCannotBuyOwnProduct)
		}

		now := time.Now().UTC()
		purchase := &models.PurchaseModel{UserID: buyer.ID, ProductID: product.ID, DateTimeCreated: now}
		if err := tx.Create(purchase).Error; err != nil {
			if errors.Is(mapDBError(err), ErrDuplicate) {
				return errs.Forbidden(errs.MsgAlreadyBoughtProduct)
			}
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		t := &transactions.Transaction{
			ID:              uuid.NewString(),
			BuyerID:         buyer.ID,
			ProductID:       product.ID,
			Product:         product.ToSummary(),
			DateTimeCreated: now,
			DateTimeUpdated: now,
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		model := &models.TransactionModel{}
		model.FromDomain(t)
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		record = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("User ", userID, " bought product with id ", productID)
	return record, nil
}

func (r *gormProductRepository) HasBought(ctx context.Context, userID, productID string) (bool, error) {
	if !isUUID(userID) || !isUUID(productID) {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.PurchaseModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return count > 0, nil
}

func findProduct(db *gorm.DB, productID string) (*models.ProductModel, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, errs.NotFound(errs.MsgProductNotFound)
	}

	var model models.ProductModel
	if err := db.Where("id = ?", productID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(errs.MsgProductNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &model, nil
}

func filterProducts(db *gorm.DB, query *products.ProductQuery) *gorm.DB {
	if query.Name != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query.Name)) + "%"
		db = db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
	if query.OwnerID != "" {
		if !isUUID(query.OwnerID) {
			return db.Where("1 = 0")
		}
		db = db.Where("owner_id = ?", query.OwnerID)
	}
	return db
}

// isUUID reports whether id can be compared against a uuid column
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
