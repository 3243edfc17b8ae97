package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	t.Run("produces fixed-width numeric codes", func(t *testing.T) {
		for _, width := range []int{order.CodeWidthMin, order.DefaultCodeWidth, order.CodeWidthMax} {
			code, err := order.GenerateVerificationCode(width)

			require.NoError(t, err)
			require.NoError(t, code.Validate())
			assert.Len(t, code.String(), width)
			assert.Regexp(t, `^\d+$`, code.String())
		}
	})

	t.Run("rejects widths outside bounds", func(t *testing.T) {
		for _, width := range []int{0, order.CodeWidthMin - 1, order.CodeWidthMax + 1} {
			_, err := order.GenerateVerificationCode(width)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("codes are independent per order", func(t *testing.T) {
		// With a 6-digit space, 20 draws colliding pairwise every time would
		// indicate a broken generator rather than bad luck.
		seen := make(map[string]bool)
		for range 20 {
			code, err := order.GenerateVerificationCode(order.DefaultCodeWidth)
			require.NoError(t, err)
			seen[code.String()] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestVerificationCodeFromString(t *testing.T) {
	t.Run("accepts stored codes with leading zeros", func(t *testing.T) {
		code, err := order.VerificationCodeFromString("004213")

		require.NoError(t, err)
		assert.Equal(t, "004213", code.String())
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := order.VerificationCodeFromString("12a456")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects wrong widths", func(t *testing.T) {
		for _, s := range []string{"", "123", "123456789"} {
			_, err := order.VerificationCodeFromString(s)
			require.Error(t, err)
		}
	})
}

func TestVerificationCode_Matches(t *testing.T) {
	code, err := order.VerificationCodeFromString("123456")
	require.NoError(t, err)

	t.Run("exact match succeeds", func(t *testing.T) {
		assert.True(t, code.Matches("123456"))
	})

	t.Run("anything else fails", func(t *testing.T) {
		assert.False(t, code.Matches("123457"))
		assert.False(t, code.Matches("12345"))
		assert.False(t, code.Matches(""))
	})

	t.Run("zero value never matches", func(t *testing.T) {
		var zero order.VerificationCode

		assert.False(t, zero.Matches(""))
		require.Error(t, zero.Validate())
	})
}
