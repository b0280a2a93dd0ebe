package models

import (
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Username        string    `gorm:"not null;uniqueIndex;type:varchar(10)"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	Palette         string    `gorm:"not null;type:varchar(20)"`
	Theme           string    `gorm:"not null;type:varchar(10)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Username:        m.Username,
		PasswordHash:    m.PasswordHash,
		Palette:         users.Palette(m.Palette),
		Theme:           users.Theme(m.Theme),
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.Palette = string(u.Palette)
	m.Theme = string(u.Theme)
	m.DateTimeCreated = u.DateTimeCreated
}
