// Package courier contains the Courier aggregate: a delivery agent and the
// unit of physical fulfillment capacity.
//
// The availability flag is the aggregate's only mutable state and is toggled
// exclusively by the order lifecycle: false when a courier is bound to an
// order, true again when that order's handoff is verified (or when a
// stranded reservation is swept). At most one live order references a
// courier at a time; the repository enforces that pick-and-flip atomically.
package courier
