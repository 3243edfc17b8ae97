package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with monotonic transitions:
//
//	Pending ──> Preparing ──> Delivered
//	    │                         ▲
//	    └─────────────────────────┘
//	  (delivered only via code verification)
//
// Delivered is terminal: no transition leaves it. The kitchen-facing
// Preparing state is optional; verification may close an order straight
// from Pending when the restaurant never reported preparation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed, paid order.
	Pending

	// Preparing indicates the restaurant is working on the order.
	Preparing

	// Delivered indicates the handoff code was verified.
	// This is a final state with no further transitions.
	Delivered
)

// getStatusStrings maps all Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Delivered: "delivered",
	}
}

// getValidStatusStrings maps only valid Status values, to support validation
// and parsing of externally supplied statuses.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Delivered: "delivered",
	}
}

// StatusFromString parses a wire-format status ("pending", "preparing",
// "delivered"). Used when restoring orders from persistence and when parsing
// administrative override requests.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further lifecycle transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Prepare transitions the status to Preparing.
//
// Valid transitions:
//   - Pending -> Preparing
//
// Any other source state is rejected: Preparing cannot be re-entered and
// Delivered never regresses.
func (s Status) Prepare() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start preparing", s))
	}

	return Preparing, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered
//   - Preparing -> Delivered
//
// Callers must have verified the handoff code first; this method only
// enforces the shape of the state machine, not the code check itself.
func (s Status) Deliver() (Status, error) {
	if s != Pending && s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}

	return Delivered, nil
}
