package commands

import (
	"context"
	"log/slog"
)

// ReleaseStrandedCouriersCommandHandler sweeps the courier pool for busy
// couriers that no open order references and releases them.
type ReleaseStrandedCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
	logger     *slog.Logger
}

// NewReleaseStrandedCouriersCommandHandler creates a handler for the
// stranded courier sweep. Requires a CourierUoWFactory and a logger for
// reporting released couriers.
func NewReleaseStrandedCouriersCommandHandler(
	uowFactory CourierUoWFactory,
	logger *slog.Logger,
) ReleaseStrandedCouriersCommandHandler {
	return ReleaseStrandedCouriersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the sweep command.
// All releases happen in a single transaction. Release is idempotent, so a
// sweep racing a concurrent handoff confirmation is harmless.
func (h *ReleaseStrandedCouriersCommandHandler) Handle(ctx context.Context, cmd ReleaseStrandedCouriersCommand) error {
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

	courierRepo := uow.CourierRepository()

	stranded, err := courierRepo.GetAllStranded(ctx)
	if err != nil {
		return err
	}

	for _, c := range stranded {
		if err = courierRepo.Release(ctx, c.ID()); err != nil {
			return err
		}

		h.logger.InfoContext(ctx, "released stranded courier", "courier_id", c.ID().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
