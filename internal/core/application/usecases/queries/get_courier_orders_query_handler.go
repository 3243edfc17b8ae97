package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler retrieves the orders assigned to one courier
// from the database, newest first.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier assignment
// queries. Requires a GORM database connection.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the courier's orders.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			courier_id,
			status,
			total_price,
			created_at
		FROM orders
		WHERE courier_id = ?
		ORDER BY created_at DESC, id
	`, query.CourierID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
