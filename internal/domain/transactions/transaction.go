package transactions

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProductSummary is the part of a product shown in a buyer's history.
type ProductSummary struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Transaction records one purchase.
type Transaction struct {
	ID              string `validate:"required,uuid4"`
	BuyerID         string `validate:"required,uuid4"`
	ProductID       string `validate:"required,uuid4"`
	Product         *ProductSummary
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// Validate for validating Transaction struct
func (t *Transaction) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
