package models

import (
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
)

// ProductModel is the GORM database model for products
type ProductModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"not null;type:varchar(100)"`
	Price           float64   `gorm:"not null"`
	Image           string    `gorm:"not null"`
	OwnerID         string    `gorm:"not null;index;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *products.Product {
	return &products.Product{
		ID:              m.ID,
		Name:            m.Name,
		Price:           m.Price,
		Image:           m.Image,
		OwnerID:         m.OwnerID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// ToSummary converts the model to the summary shown in transaction listings
func (m *ProductModel) ToSummary() *transactions.ProductSummary {
	return &transactions.ProductSummary{
		ID:    m.ID,
		Name:  m.Name,
		Price: m.Price,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *products.Product) {
	m.ID = p.ID
	m.Name = p.Name
	m.Price = p.Price
	m.Image = p.Image
	m.OwnerID = p.OwnerID
	m.DateTimeCreated = p.DateTimeCreated
}
