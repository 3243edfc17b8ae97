// Package ports defines the outbound contracts of the fulfillment core.
// These interfaces establish the boundary between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// ErrNoCourierAvailable is returned by ReserveFirstAvailable when every
// courier in the pool is currently assigned.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierRepository defines the persistence contract for courier aggregates.
// Besides plain CRUD it owns the two dispatch primitives: the atomic
// reserve of an arbitrary free courier and the idempotent release.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// ReserveFirstAvailable picks any available courier, flips them to
	// unavailable and returns them. The pick and the flip happen as one
	// atomic step: two concurrent calls can never return the same courier.
	// Which of the available couriers is picked is unspecified.
	//
	// Returns ErrNoCourierAvailable when the pool is empty.
	ReserveFirstAvailable(ctx context.Context) (*courier.Courier, error)

	// Release marks the courier as available again. Releasing a courier
	// that is already available is a no-op, so the call is safe to retry.
	Release(ctx context.Context, id kernel.UUID) error

	// GetAllStranded retrieves busy couriers that are not referenced by
	// any open order. Such couriers exist only after an operational fault
	// and should be returned to the pool.
	GetAllStranded(ctx context.Context) ([]*courier.Courier, error)
}
