package products

import (
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/go-playground/validator/v10"
)

// Sort options accepted by ProductQuery.
const (
	SortByName  = "name"
	SortByPrice = "price"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ProductQuery filters, sorts and paginates product listings.
type ProductQuery struct {
	// Name matches products whose name contains it, ignoring case.
	Name    string
	OwnerID string

	SortBy    string `validate:"omitempty,oneof=name price"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`

	// Page 0 returns every match. Pages start at 1.
	Page  int `validate:"min=0"`
	Limit int `validate:"min=0"`
}

// NewProductQuery returns a query matching every product without pagination.
func NewProductQuery() *ProductQuery {
	return &ProductQuery{}
}

// Validate returns errs.Invalid("Invalid option") for unsupported sort or paging values.
func (q *ProductQuery) Validate() error {
	if err := validator.New().Struct(q); err != nil {
		return errs.Invalid(errs.MsgInvalidOption)
	}
	return nil
}

// Paginated reports whether the query selects a single page.
func (q *ProductQuery) Paginated() bool {
	return q.Page > 0
}

// Offset is the number of matches skipped before the current page.
func (q *ProductQuery) Offset() int {
	if !q.Paginated() {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// ProductPage is one page of a listing plus the number of matches overall.
type ProductPage struct {
	Products []*Product
	Total    int64
}
