package products

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Product entity
type Product struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=5,max=100"`
	Price           float64   `validate:"required,min=0.01"`
	Image           string    `validate:"required"`
	OwnerID         string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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

// ProductInput carries the user-editable fields of a product.
type ProductInput struct {
	Name  string  `json:"name" validate:"required,min=5,max=100"`
	Price float64 `json:"price" validate:"required,min=0.01"`
	Image string  `json:"image" validate:"required"`
}

var inputMessages = map[string]string{
	"Name.required":  "Product name is required",
	"Name.min":       "Product name must be at least five characters",
	"Name.max":       "Product name must be no more than 100 characters",
	"Price.required": "Price is required",
	"Price.min":      "Price must be at least 0.01$",
	"Image.required": "Image is required",
}

// Normalize trims the name and image.
func (in *ProductInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
}

// Validate checks a product about to be created.
func (in *ProductInput) Validate() error {
	return in.validate(true)
}

// ValidateEdit checks an edit. An empty image keeps the current one.
func (in *ProductInput) ValidateEdit() error {
	return in.validate(in.Image != "")
}

func (in *ProductInput) validate(withImage bool) error {
	validate := validator.New()

	var err error
	if withImage {
		err = validate.Struct(in)
	} else {
		err = validate.StructExcept(in, "Image")
	}
	if err != nil {
		return errs.Invalid(validators.Messages(err, inputMessages)...)
	}
	return nil
}

// RoundPrice rounds price half away from zero to whole cents.
func RoundPrice(price float64) float64 {
	return decimal.NewFromFloat(price).Round(2).InexactFloat64()
}
