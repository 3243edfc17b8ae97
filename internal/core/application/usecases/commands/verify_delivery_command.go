package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrVerifyDeliveryCommandIsNotConstructed = errors.New(
		"VerifyDeliveryCommand must be created via NewVerifyDeliveryCommand constructor",
	)
)

// VerifyDeliveryCommand represents a courier's handoff confirmation attempt:
// the customer reads out the verification code and the courier submits it
// against the order.
//
// Example:
//
//	cmd, err := NewVerifyDeliveryCommand(orderID, "123456")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewVerifyDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // order.ErrInvalidVerificationCode: wrong code, attempt recorded
//	    return err
//	}
type VerifyDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewVerifyDeliveryCommand creates a handoff confirmation command.
// The submitted code is carried verbatim; matching is the aggregate's job.
func NewVerifyDeliveryCommand(orderID kernel.UUID, code string) (VerifyDeliveryCommand, error) {
	command := VerifyDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCode(code),
	); err != nil {
		return VerifyDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyDeliveryCommandIsNotConstructed if validation fails.
func (c VerifyDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed.
func (c VerifyDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the submitted verification code.
func (c VerifyDeliveryCommand) Code() string {
	return c.code
}

func (c *VerifyDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyDeliveryCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
