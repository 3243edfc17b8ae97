package commands

import (
	"context"
)

// SetOrderStatusCommandHandler handles operator status overrides.
// The aggregate enforces the lifecycle rules: no regressions, and the
// delivered status stays reachable only through handoff confirmation.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for status overrides.
// Requires an OrderUoWFactory for transactional persistence.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
// Loads the order, applies the override through the aggregate and persists
// the result. Returns order.ErrDeliveredOnlyViaVerification when the target
// status is delivered.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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

	if err = aggregate.OverrideStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
