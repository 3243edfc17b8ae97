package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
		"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
	)
)

// GetCourierOrdersQuery retrieves the orders assigned to a courier,
// including completed deliveries.
type GetCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for one courier's assignments.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetCourierOrdersQuery, error) {
	query := GetCourierOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierOrdersQueryIsNotConstructed if validation fails.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetCourierOrdersQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}
