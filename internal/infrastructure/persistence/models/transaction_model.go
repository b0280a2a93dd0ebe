package models

import (
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
)

// TransactionModel is the GORM database model for purchase transactions
type TransactionModel struct {
	ID              string        `gorm:"primaryKey;type:uuid"`
	BuyerID         string        `gorm:"not null;index;type:uuid"`
	ProductID       string        `gorm:"not null;index;type:uuid"`
	Product         *ProductModel `gorm:"foreignKey:ProductID"`
	DateTimeCreated time.Time     `gorm:"not null"`
	DateTimeUpdated time.Time     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts GORM model to domain entity.
// The product summary is set only when Product was preloaded.
func (m *TransactionModel) ToDomain() *transactions.Transaction {
	t := &transactions.Transaction{
		ID:              m.ID,
		BuyerID:         m.BuyerID,
		ProductID:       m.ProductID,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
	if m.Product != nil {
		t.Product = m.Product.ToSummary()
	}
	return t
}

// FromDomain converts domain entity to GORM model
func (m *TransactionModel) FromDomain(t *transactions.Transaction) {
	m.ID = t.ID
	m.BuyerID = t.BuyerID
	m.ProductID = t.ProductID
	m.DateTimeCreated = t.DateTimeCreated
	m.DateTimeUpdated = t.DateTimeUpdated
}
