package order

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDeliveryInfoIsNotConstructed is returned when validating a zero-value
// DeliveryInfo.
var ErrDeliveryInfoIsNotConstructed = errors.New(
	"DeliveryInfo must be created via NewDeliveryInfo constructor")

// DeliveryInfo holds the contact details the courier uses at the door:
// recipient name, phone number, and street address.
type DeliveryInfo struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewDeliveryInfo creates delivery contact info. All three fields are
// required; without them the courier cannot complete the handoff.
func NewDeliveryInfo(name string, phone string, address string) (DeliveryInfo, error) {
	info := DeliveryInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setName(name),
		info.setPhone(phone),
		info.setAddress(address),
	); err != nil {
		return DeliveryInfo{}, err
	}

	return info, nil
}

// Validate checks that the DeliveryInfo was created through its constructor.
func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}

// Name returns the recipient's name.
func (d DeliveryInfo) Name() string {
	return d.name
}

// Phone returns the recipient's phone number.
func (d DeliveryInfo) Phone() string {
	return d.phone
}

// Address returns the delivery street address.
func (d DeliveryInfo) Address() string {
	return d.address
}

func (d *DeliveryInfo) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("delivery name")
	}
	d.name = name
	return nil
}

func (d *DeliveryInfo) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("delivery phone")
	}
	d.phone = phone
	return nil
}

func (d *DeliveryInfo) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	d.address = address
	return nil
}
