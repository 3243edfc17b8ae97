package customerrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerDirectory implements the CustomerDirectory port using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

// NewGormCustomerDirectory creates a new GORM-backed customer directory.
func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// GetContact retrieves a customer's contact details.
func (r *GormCustomerDirectory) GetContact(ctx context.Context, id kernel.UUID) (ports.CustomerContact, error) {
	if err := id.Validate(); err != nil {
		return ports.CustomerContact{}, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CustomerContact{}, errs.NewObjectNotFoundError("customer", id.String())
		}
		return ports.CustomerContact{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CustomerContact{}, err
	}

	return ports.CustomerContact{
		ID:    customerID,
		Name:  dto.Name,
		Email: dto.Email,
	}, nil
}

// Add inserts a customer contact. Used for directory sync and test seeding.
func (r *GormCustomerDirectory) Add(ctx context.Context, contact ports.CustomerContact) error {
	if err := contact.ID.Validate(); err != nil {
		return err
	}
	if contact.Email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	dto := fromContact(contact)
	return r.db.WithContext(ctx).Create(&dto).Error
}
