package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultProductsPerPage is used when no page size is configured
const DefaultProductsPerPage = 6

// CatalogSettings holds listing options for products
type CatalogSettings struct {
	ProductsPerPage int `mapstructure:"products_per_page" validate:"min=1,max=100"`
}

// Validate checks that all fields in CatalogSettings are valid
func (s *CatalogSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CatalogSettings: %w", err)
	}

	return nil
}
