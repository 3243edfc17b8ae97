// Package order contains the Order aggregate and its value objects.
//
// An order is created only after the customer's payment is confirmed and a
// courier has been reserved; it then moves through a monotonic lifecycle
// (pending -> preparing -> delivered) where the delivered state is reachable
// solely by presenting the order's verification code. The aggregate owns the
// invariants the rest of the system relies on: the total price is derived
// from the priced line items and never accepted from a client, the
// verification code is fixed at creation, and status transitions never skip
// the code check or regress.
package order
