package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
)

// VerifyDeliveryCommandHandler handles handoff confirmation.
// On a correct code the order is delivered and its courier returns to the
// pool; on a wrong code the failed attempt is persisted so the retry limit
// survives restarts.
//
// Example:
//
//	handler := NewVerifyDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewVerifyDeliveryCommand(orderID, submittedCode)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidVerificationCode):
//	    // reject, attempt already counted
//	case errors.Is(err, order.ErrVerificationAttemptsExceeded):
//	    // order locked for manual resolution
//	}
type VerifyDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewVerifyDeliveryCommandHandler creates a handler for handoff confirmation.
// Requires a UoWFactory for coordinating order and courier updates.
func NewVerifyDeliveryCommandHandler(uowFactory UoWFactory) VerifyDeliveryCommandHandler {
	return VerifyDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the handoff confirmation command.
//
// The order update and the courier release commit together, so a courier is
// never left reserved for a delivered order. A wrong code also commits: the
// attempt counter must advance even though the confirmation failed, and the
// domain error is returned after the commit. Re-confirming an already
// delivered order with the correct code succeeds without touching anything.
func (h *VerifyDeliveryCommandHandler) Handle(ctx context.Context, cmd VerifyDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	released, verifyErr := aggregate.VerifyHandoff(cmd.Code())
	if verifyErr != nil && !errors.Is(verifyErr, order.ErrInvalidVerificationCode) {
		return verifyErr
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if released && aggregate.Courier() != nil {
		if err = uow.CourierRepository().Release(ctx, *aggregate.Courier()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return verifyErr
}
