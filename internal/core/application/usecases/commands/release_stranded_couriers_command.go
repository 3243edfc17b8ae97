package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrReleaseStrandedCouriersCommandIsNotConstructed = errors.New(
		"ReleaseStrandedCouriersCommand must be created via NewReleaseStrandedCouriersCommand constructor",
	)
)

// ReleaseStrandedCouriersCommand triggers a sweep that returns stranded
// couriers to the pool. A courier is stranded when they are marked busy but
// no open order references them, which can only happen after an operational
// fault such as a manual data fix.
//
// Example:
//
//	cmd := NewReleaseStrandedCouriersCommand()
//	handler := NewReleaseStrandedCouriersCommandHandler(uowFactory, logger)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stranded courier sweep failed: %v", err)
//	}
type ReleaseStrandedCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseStrandedCouriersCommand creates a command to sweep stranded
// couriers. This is a parameterless command.
func NewReleaseStrandedCouriersCommand() ReleaseStrandedCouriersCommand {
	command := ReleaseStrandedCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseStrandedCouriersCommandIsNotConstructed if validation fails.
func (c *ReleaseStrandedCouriersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStrandedCouriersCommandIsNotConstructed)
}
