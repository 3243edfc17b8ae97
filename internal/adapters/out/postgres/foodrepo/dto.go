// Package foodrepo provides the persistence layer for the menu catalog.
// The catalog is the single source of item prices: order totals are always
// derived from it, never from client input.
package foodrepo

import (
	"time"

	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
)

// FoodDTO represents the database structure for menu items.
type FoodDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for menu items.
// Overrides GORM's default naming convention to use "foods".
func (FoodDTO) TableName() string {
	return "foods"
}

// fromCatalogItem converts a catalog entry to its database representation.
func fromCatalogItem(item ports.CatalogItem) FoodDTO {
	return FoodDTO{
		ID:    item.ID.Bytes(),
		Name:  item.Name,
		Price: item.Price,
	}
}
