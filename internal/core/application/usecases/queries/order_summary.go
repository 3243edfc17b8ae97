// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projections straight from
// the database for optimal read performance.
package queries

import (
	"database/sql"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderSummaryResponse is the read model shared by the order listing
// queries. It carries lifecycle data only; the verification code is
// deliberately absent from every read model.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	CourierID  *kernel.UUID
	Status     order.Status
	TotalPrice float64
	PlacedAt   time.Time
}

// scanOrderSummaries drains rows produced by the shared order summary
// column list: id, customer_id, courier_id, status, total_price, created_at.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var id, customerID uuid.UUID
		var courierID uuid.NullUUID
		var status string
		var summary OrderSummaryResponse

		err := rows.Scan(
			&id,
			&customerID,
			&courierID,
			&status,
			&summary.TotalPrice,
			&summary.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.CustomerID = custID

		if courierID.Valid {
			cID, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			summary.CourierID = &cID
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		summary.Status = orderStatus

		orders = append(orders, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
