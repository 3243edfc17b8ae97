package courier

import (
	"errors"
	"fmt"
	"regexp"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// phonePattern matches the only accepted courier phone format: exactly ten
// digits, no separators. Dispatch tooling dials these numbers verbatim.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly
	// initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrCourierNotAvailable is returned when reserving a courier that is
	// already bound to an order.
	ErrCourierNotAvailable = errors.New("courier is not available")
)

// Courier represents a delivery agent.
//
// Credentials and login identity live with the external auth collaborator;
// this aggregate owns only the dispatch-relevant state: contact details and
// the availability flag. The flag is false for the entire interval between
// assignment to an order and that order's verified handoff.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Asha", "asha@example.com", "9876543210")
//	if err != nil {
//	    // handle validation error
//	}
//	// c.IsAvailable() == true: onboarded couriers start in the pool
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID

	// name is the courier's display name
	name string

	// email receives dispatch notifications
	email string

	// phone is the ten-digit dispatch contact
	phone string

	// isAvailable is true while the courier sits in the reservation pool
	isAvailable bool

	// guard ensures construction through NewCourier or RestoreCourier
	guard guard.ConstructorGuard
}

// NewCourier onboards a courier. New couriers start available.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (required)
//   - email: notification address (required)
//   - phone: dispatch phone, exactly ten digits
//
// Validation errors for multiple fields are aggregated into one error.
func NewCourier(id kernel.UUID, name string, email string, phone string) (*Courier, error) {
	c := &Courier{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence, preserving the
// availability flag as stored.
func RestoreCourier(id kernel.UUID, name string, email string, phone string, isAvailable bool) (*Courier, error) {
	c, err := NewCourier(id, name, email, phone)
	if err != nil {
		return nil, err
	}

	c.isAvailable = isAvailable
	return c, nil
}

// Validate checks that the Courier was created through its constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's notification address.
func (c *Courier) Email() string {
	return c.email
}

// Phone returns the courier's ten-digit dispatch phone.
func (c *Courier) Phone() string {
	return c.phone
}

// IsAvailable reports whether the courier sits in the reservation pool.
func (c *Courier) IsAvailable() bool {
	return c.isAvailable
}

// Reserve binds the courier to an order by flipping availability to false.
// Returns ErrCourierNotAvailable if the courier is already bound. Note that
// in-memory reservation alone does not provide mutual exclusion across
// concurrent requests; the repository performs the atomic pick-and-flip and
// this method expresses the rule for aggregates already in hand.
func (c *Courier) Reserve() error {
	if !c.isAvailable {
		return ErrCourierNotAvailable
	}

	c.isAvailable = false
	return nil
}

// Release returns the courier to the pool. Releasing an already available
// courier is a no-op, not an error, so compensation paths can call it
// unconditionally.
func (c *Courier) Release() {
	c.isAvailable = true
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a ten-digit phone number", phone))
	}
	c.phone = phone
	return nil
}
