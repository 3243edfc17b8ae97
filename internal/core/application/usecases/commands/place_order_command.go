package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine is a single requested menu item within a PlaceOrderCommand.
// It carries no price: prices are always resolved from the catalog.
type OrderLine struct {
	FoodID   kernel.UUID
	Quantity int
}

// DeliveryDetails carries the recipient contact and drop-off address.
type DeliveryDetails struct {
	Name    string
	Phone   string
	Address string
}

// PaymentDetails carries the upstream payment reference for the order.
type PaymentDetails struct {
	TransactionID string
	Status        string
}

// PlaceOrderCommand represents a customer's request to place a food order.
// Encapsulates the requested items, delivery details, payment reference and
// an optional drop-off geolocation.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, lines, delivery, payment, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, catalog, customers, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	lines      []OrderLine
	delivery   DeliveryDetails
	payment    PaymentDetails
	location   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new food order.
// Validates identifiers, requires at least one order line with a positive
// quantity, and requires the delivery contact fields. The payment status is
// carried as-is; the payment gate is enforced by the order aggregate.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	lines []OrderLine,
	delivery DeliveryDetails,
	payment PaymentDetails,
	location *kernel.GeoPoint,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setLines(lines),
		command.setDelivery(delivery),
		command.setPayment(payment),
		command.setLocation(location),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Delivery returns the recipient contact and drop-off address.
func (c PlaceOrderCommand) Delivery() DeliveryDetails {
	return c.delivery
}

// Payment returns the upstream payment reference.
func (c PlaceOrderCommand) Payment() PaymentDetails {
	return c.payment
}

// Location returns the optional drop-off geolocation, or nil.
func (c PlaceOrderCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.FoodID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("food id", err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *PlaceOrderCommand) setDelivery(delivery DeliveryDetails) error {
	if delivery.Name == "" {
		return errs.NewValueIsRequiredError("delivery name")
	}
	if delivery.Phone == "" {
		return errs.NewValueIsRequiredError("delivery phone")
	}
	if delivery.Address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	c.delivery = delivery
	return nil
}

func (c *PlaceOrderCommand) setPayment(payment PaymentDetails) error {
	if payment.TransactionID == "" {
		return errs.NewValueIsRequiredError("payment transaction id")
	}
	if payment.Status == "" {
		return errs.NewValueIsRequiredError("payment status")
	}

	c.payment = payment
	return nil
}

func (c *PlaceOrderCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	loc := *location
	c.location = &loc
	return nil
}
