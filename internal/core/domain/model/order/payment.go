package order

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// PaymentStatusConfirmed is the sentinel status reported by the payment
// gateway when a charge went through. It is the only value that permits
// order creation.
const PaymentStatusConfirmed = "succeeded"

// ErrPaymentIsNotConstructed is returned when validating a zero-value Payment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records the outcome of an external payment transaction.
// The gateway integration itself lives outside this service; the aggregate
// only keeps the transaction reference and its reported status as an
// audit trail.
type Payment struct { //nolint:recvcheck //using for validation
	transactionID string
	status        string

	guard guard.ConstructorGuard
}

// NewPayment creates a payment record from the gateway's transaction id and
// status string. Both are required; the status is stored verbatim, and
// confirmation is checked via IsConfirmed.
func NewPayment(transactionID string, status string) (Payment, error) {
	payment := Payment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setTransactionID(transactionID),
		payment.setStatus(status),
	); err != nil {
		return Payment{}, err
	}

	return payment, nil
}

// Validate checks that the Payment was created through its constructor.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// TransactionID returns the external gateway transaction reference.
func (p Payment) TransactionID() string {
	return p.transactionID
}

// Status returns the gateway-reported status verbatim.
func (p Payment) Status() string {
	return p.status
}

// IsConfirmed reports whether the gateway confirmed the charge.
func (p Payment) IsConfirmed() bool {
	return p.status == PaymentStatusConfirmed
}

func (p *Payment) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("payment transaction id")
	}
	p.transactionID = transactionID
	return nil
}

func (p *Payment) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("payment status")
	}
	p.status = status
	return nil
}
