package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// CatalogItem is a priced menu entry as the catalog knows it. Order totals
// are always derived from these prices, never from client input.
type CatalogItem struct {
	ID    kernel.UUID
	Name  string
	Price float64
}

// FoodCatalog resolves menu item identifiers to their current prices.
type FoodCatalog interface {
	// GetItem retrieves a catalog entry by its identifier.
	// Returns errs.ObjectNotFoundError when the item is not on the menu.
	GetItem(ctx context.Context, id kernel.UUID) (CatalogItem, error)
}
