// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over SQLite or PostgreSQL and stores
// users, products, purchases and transactions. Repositories validate
// entities before writing and log every mutation.
package persistence
