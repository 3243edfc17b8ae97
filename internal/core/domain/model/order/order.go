package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// MaxVerificationAttempts bounds how many wrong codes may be submitted for
// one order. The code space is small by design, so brute force is stopped
// here rather than in the code itself.
const MaxVerificationAttempts = 5

// Domain errors for order lifecycle operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPaymentNotConfirmed is returned when attempting to create an order
	// whose payment record does not carry the confirmed sentinel status.
	ErrPaymentNotConfirmed = errors.New("payment is not confirmed")

	// ErrInvalidVerificationCode is returned when a submitted handoff code
	// does not match the order's stored code. The order is unchanged apart
	// from the attempt counter, and the submission may be retried.
	ErrInvalidVerificationCode = errors.New("invalid verification code")

	// ErrVerificationAttemptsExceeded is returned once too many wrong codes
	// were submitted for an order. Further verification requires an
	// administrative reset.
	ErrVerificationAttemptsExceeded = errors.New("verification attempts exceeded")

	// ErrDeliveredOnlyViaVerification is returned when an administrative
	// status override tries to set the delivered state directly. Delivery
	// must go through code verification so the assigned courier is released.
	ErrDeliveredOnlyViaVerification = errors.New(
		"delivered status can only be reached via code verification")
)

// Order is the aggregate root of the fulfillment core. It represents one
// paid purchase moving from placement to physical handoff.
//
// Invariants maintained by this type:
//   - the total price always equals the sum of item subtotals; it is computed
//     at construction and never accepted from outside
//   - an order exists only with a confirmed payment and a reserved courier
//   - status transitions are monotonic; delivered is reachable only through
//     VerifyHandoff with the correct code
//   - the verification code is fixed at creation and never regenerated
//   - the courier reference survives delivery for audit, even though the
//     courier itself returns to the available pool
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the identity of the ordering user (owned by the
	// external auth collaborator)
	customerID kernel.UUID

	// items are the priced lines; non-empty for any valid order
	items []Item

	// totalPrice is derived from items at construction
	totalPrice float64

	// deliveryInfo is the door-side contact information
	deliveryInfo DeliveryInfo

	// payment is the confirmed external payment record
	payment Payment

	// location is the optional delivery geolocation
	location *kernel.GeoPoint

	// status is the current lifecycle state
	status Status

	// code is the handoff verification code, fixed at creation
	code VerificationCode

	// courierID is the reserved courier; retained after delivery for audit
	courierID *kernel.UUID

	// failedVerifications counts wrong code submissions
	failedVerifications int

	// guard ensures construction through NewOrder or RestoreOrder
	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status with a server-computed total.
//
// Preconditions enforced here:
//   - payment must be confirmed (ErrPaymentNotConfirmed)
//   - at least one valid item (each priced at order time by the caller)
//   - a reserved courier: placement reserves the courier before persisting
//     the order, so a courier reference is mandatory at creation
//   - location is optional and may be nil
//
// The total price is the sum of the items' subtotals; any client-supplied
// total is ignored by construction.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	deliveryInfo DeliveryInfo,
	payment Payment,
	location *kernel.GeoPoint,
	code VerificationCode,
	courierID kernel.UUID,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryInfo(deliveryInfo),
		o.setPayment(payment),
		o.setLocation(location),
		o.setCode(code),
		o.assignCourier(courierID),
	); err != nil {
		return nil, err
	}

	if !o.payment.IsConfirmed() {
		return nil, ErrPaymentNotConfirmed
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its lifecycle state and attempt counter. Unlike NewOrder it does not
// re-check the payment gate: a persisted order already passed it.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	deliveryInfo DeliveryInfo,
	payment Payment,
	location *kernel.GeoPoint,
	status Status,
	code VerificationCode,
	courierID *kernel.UUID,
	failedVerifications int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryInfo(deliveryInfo),
		o.setPayment(payment),
		o.setLocation(location),
		o.setStatus(status),
		o.setCode(code),
		o.setFailedVerifications(failedVerifications),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := o.assignCourier(*courierID); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering user.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the priced line items.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// TotalPrice returns the derived order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// DeliveryInfo returns the door-side contact information.
func (o *Order) DeliveryInfo() DeliveryInfo {
	return o.deliveryInfo
}

// Payment returns the external payment record.
func (o *Order) Payment() Payment {
	return o.payment
}

// Location returns the optional delivery geolocation, nil when absent.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Code returns the handoff verification code.
func (o *Order) Code() VerificationCode {
	return o.code
}

// Courier returns the reserved courier's ID, nil if none was ever assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// FailedVerifications returns how many wrong codes were submitted so far.
func (o *Order) FailedVerifications() int {
	return o.failedVerifications
}

// MarkPreparing transitions the order from Pending to Preparing. This is the
// restaurant-side progress signal and does not touch courier assignment or
// the verification code.
func (o *Order) MarkPreparing() error {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// OverrideStatus applies an administrative status change.
//
// Rules:
//   - setting the current status again is a no-op
//   - Delivered is rejected with ErrDeliveredOnlyViaVerification: reaching it
//     without the verification flow would strand the courier as busy
//   - all other targets go through the regular transition checks, so
//     regressions are rejected as invalid transitions
func (o *Order) OverrideStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == o.status {
		return nil
	}

	if target == Delivered {
		return ErrDeliveredOnlyViaVerification
	}

	// The only remaining legal override is pending -> preparing.
	return o.MarkPreparing()
}

// VerifyHandoff consumes a submitted verification code.
//
// Outcomes:
//   - wrong code: the attempt counter increments and
//     ErrInvalidVerificationCode is returned; status never changes
//   - attempt limit reached: ErrVerificationAttemptsExceeded, without
//     comparing the code
//   - correct code on a live order: status becomes Delivered and
//     released=true tells the caller to return the courier to the pool
//   - correct code on an already delivered order: no-op success with
//     released=false, so repeated confirmations stay idempotent
func (o *Order) VerifyHandoff(submitted string) (released bool, err error) {
	if o.failedVerifications >= MaxVerificationAttempts {
		return false, ErrVerificationAttemptsExceeded
	}

	if !o.code.Matches(submitted) {
		o.failedVerifications++
		return false, ErrInvalidVerificationCode
	}

	if o.status == Delivered {
		return false, nil
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return false, err
	}

	o.status = newStatus
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalPrice = total
	return nil
}

func (o *Order) setDeliveryInfo(info DeliveryInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}
	o.deliveryInfo = info
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	o.location = &loc
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCode(code VerificationCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setFailedVerifications(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidError("failed verifications")
	}
	o.failedVerifications = count
	return nil
}

func (o *Order) assignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	o.courierID = &courierID
	return nil
}
