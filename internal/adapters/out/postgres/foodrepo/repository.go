package foodrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFoodCatalog implements the FoodCatalog port using GORM.
// Reads bypass any transaction: a stale price read at placement time is
// acceptable, the resolved price is frozen into the order items.
type GormFoodCatalog struct {
	db *gorm.DB
}

// NewGormFoodCatalog creates a new GORM-backed food catalog.
func NewGormFoodCatalog(db *gorm.DB) *GormFoodCatalog {
	return &GormFoodCatalog{db: db}
}

// GetItem retrieves a catalog entry by its identifier.
func (r *GormFoodCatalog) GetItem(ctx context.Context, id kernel.UUID) (ports.CatalogItem, error) {
	if err := id.Validate(); err != nil {
		return ports.CatalogItem{}, err
	}

	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogItem{}, errs.NewObjectNotFoundError("food", id.String())
		}
		return ports.CatalogItem{}, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	return ports.CatalogItem{
		ID:    itemID,
		Name:  dto.Name,
		Price: dto.Price,
	}, nil
}

// Add inserts a menu item. Used for catalog management and test seeding.
func (r *GormFoodCatalog) Add(ctx context.Context, item ports.CatalogItem) error {
	if err := item.ID.Validate(); err != nil {
		return err
	}
	if item.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if item.Price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	dto := fromCatalogItem(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}
