package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one ordered line: a catalog reference, a quantity, and the unit
// price snapshotted at order time. Snapshotting matters: catalog prices may
// change after placement, but the order's total is fixed at what the
// customer actually paid.
type Item struct { //nolint:recvcheck //using for validation
	foodID    kernel.UUID
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewItem creates a priced line item.
// Quantity must be at least 1 and the unit price must not be negative.
func NewItem(foodID kernel.UUID, quantity int, unitPrice float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setFoodID(foodID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the Item was created through its constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// FoodID returns the catalog reference of the ordered food.
func (i Item) FoodID() kernel.UUID {
	return i.foodID
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

func (i *Item) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	i.foodID = foodID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%g is negative", unitPrice))
	}

	i.unitPrice = unitPrice
	return nil
}
