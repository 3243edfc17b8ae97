// Package customerrepo provides the persistence layer for customer contact
// lookups. Customer identity and credentials live with the external auth
// collaborator; this table only mirrors the contact details the core needs.
package customerrepo

import (
	"time"

	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer contacts.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for customer contacts.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromContact converts a customer contact to its database representation.
func fromContact(contact ports.CustomerContact) CustomerDTO {
	return CustomerDTO{
		ID:    contact.ID.Bytes(),
		Name:  contact.Name,
		Email: contact.Email,
	}
}
