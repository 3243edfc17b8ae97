package order

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

const (
	// CodeWidthMin is the narrowest allowed verification code (courier handoff).
	CodeWidthMin = 4
	// CodeWidthMax bounds the code width; anything longer stops being
	// human-enterable at the door.
	CodeWidthMax = 8
	// DefaultCodeWidth is the width used for customer-facing codes.
	DefaultCodeWidth = 6
)

// ErrVerificationCodeIsNotConstructed is returned when validating a zero-value
// VerificationCode.
var ErrVerificationCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"verification code must be created via GenerateVerificationCode or VerificationCodeFromString")

// VerificationCode is the shared secret proving physical handoff of an order.
// It is a fixed-width numeric string generated once at order creation and
// consumed at delivery confirmation.
//
// The code is deliberately low-entropy: it has to be read over the phone or
// typed on a courier's device by hand. Guessing resistance comes from the
// bounded number of verification attempts per order, not from the code space.
type VerificationCode struct {
	value string
}

// GenerateVerificationCode produces a uniformly random numeric code of the
// given width. Leading zeros are allowed, so the full digit space is used.
func GenerateVerificationCode(width int) (VerificationCode, error) {
	if width < CodeWidthMin || width > CodeWidthMax {
		return VerificationCode{}, errs.NewValueIsOutOfRangeError("code width", width, CodeWidthMin, CodeWidthMax)
	}

	var b strings.Builder
	b.Grow(width)
	for range width {
		b.WriteByte(byte('0' + rand.IntN(10))) //nolint:gosec // low-entropy by design, see type doc
	}

	return VerificationCode{value: b.String()}, nil
}

// VerificationCodeFromString reconstructs a code from persistence.
// The input must be all digits and of an allowed width.
func VerificationCodeFromString(s string) (VerificationCode, error) {
	if len(s) < CodeWidthMin || len(s) > CodeWidthMax {
		return VerificationCode{}, errs.NewValueIsOutOfRangeError("code width", len(s), CodeWidthMin, CodeWidthMax)
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return VerificationCode{}, errs.NewValueIsInvalidErrorWithCause("verification code",
				fmt.Errorf("%q is not numeric", s))
		}
	}

	return VerificationCode{value: s}, nil
}

// String returns the code digits. Exposed so the notification path can
// deliver the code to the customer.
func (c VerificationCode) String() string {
	return c.value
}

// Matches compares a submitted code against the stored one using exact string
// equality. Constant-time comparison is deliberately not used: the attempt
// limit on the order makes timing attacks moot for a human-scale secret.
func (c VerificationCode) Matches(submitted string) bool {
	return c.value != "" && c.value == submitted
}

// Validate returns an error for the zero value.
func (c VerificationCode) Validate() error {
	if c.value == "" {
		return ErrVerificationCodeIsNotConstructed
	}
	return nil
}
