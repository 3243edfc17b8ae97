package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerContact carries the notification details for a customer.
type CustomerContact struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// CustomerDirectory looks up customer contact details. Customer identity
// and credentials live with the external auth collaborator; the core only
// needs to know where to send handoff codes.
type CustomerDirectory interface {
	// GetContact retrieves a customer's contact details.
	// Returns errs.ObjectNotFoundError when the customer is unknown.
	GetContact(ctx context.Context, id kernel.UUID) (CustomerContact, error)
}
