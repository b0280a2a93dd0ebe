package models

import (
	"time"
)

// PurchaseModel records that a user has bought a product.
// The composite primary key rejects a second purchase of the same product.
type PurchaseModel struct {
	UserID          string    `gorm:"primaryKey;type:uuid"`
	ProductID       string    `gorm:"primaryKey;index;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}
