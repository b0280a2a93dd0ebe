// Package models contains the GORM database models.
// Models are kept apart from domain entities and convert with ToDomain and FromDomain.
package models
