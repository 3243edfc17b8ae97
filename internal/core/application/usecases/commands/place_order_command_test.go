package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []commands.OrderLine {
	return []commands.OrderLine{
		{FoodID: kernel.NewUUID(), Quantity: 2},
		{FoodID: kernel.NewUUID(), Quantity: 1},
	}
}

func validDelivery() commands.DeliveryDetails {
	return commands.DeliveryDetails{
		Name:    "Ravi Kumar",
		Phone:   "9876543210",
		Address: "14 MG Road, Bengaluru",
	}
}

func validPayment() commands.PaymentDetails {
	return commands.PaymentDetails{
		TransactionID: "pi_3MtwBwLkdIwHu7ix28a3tqPa",
		Status:        "succeeded",
	}
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	lines := validLines()

	// Act
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, lines, validDelivery(), validPayment(), nil)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
	assert.Equal(t, lines, cmd.Lines())
	assert.Equal(t, validDelivery(), cmd.Delivery())
	assert.Equal(t, validPayment(), cmd.Payment())
	assert.Nil(t, cmd.Location())
}

func TestNewPlaceOrderCommand_WithLocation(t *testing.T) {
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), validLines(), validDelivery(), validPayment(), &location,
	)

	require.NoError(t, err)
	require.NotNil(t, cmd.Location())
	assert.InDelta(t, 12.9716, cmd.Location().Lat(), 0)
}

func TestNewPlaceOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, validDelivery(), validPayment(), nil,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}

func TestNewPlaceOrderCommand_InvalidLine(t *testing.T) {
	testCases := []struct {
		name string
		line commands.OrderLine
	}{
		{
			name: "zero quantity",
			line: commands.OrderLine{FoodID: kernel.NewUUID(), Quantity: 0},
		},
		{
			name: "negative quantity",
			line: commands.OrderLine{FoodID: kernel.NewUUID(), Quantity: -3},
		},
		{
			name: "missing food id",
			line: commands.OrderLine{Quantity: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewPlaceOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(),
				[]commands.OrderLine{tc.line},
				validDelivery(), validPayment(), nil,
			)

			require.Error(t, err)
		})
	}
}

func TestNewPlaceOrderCommand_MissingDeliveryFields(t *testing.T) {
	testCases := []struct {
		name     string
		delivery commands.DeliveryDetails
	}{
		{
			name:     "missing name",
			delivery: commands.DeliveryDetails{Phone: "9876543210", Address: "addr"},
		},
		{
			name:     "missing phone",
			delivery: commands.DeliveryDetails{Name: "Ravi", Address: "addr"},
		},
		{
			name:     "missing address",
			delivery: commands.DeliveryDetails{Name: "Ravi", Phone: "9876543210"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewPlaceOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(), validLines(), tc.delivery, validPayment(), nil,
			)

			require.Error(t, err)
		})
	}
}

func TestNewPlaceOrderCommand_MissingPaymentFields(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), validLines(), validDelivery(),
		commands.PaymentDetails{Status: "succeeded"}, nil,
	)
	require.Error(t, err)

	_, err = commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), validLines(), validDelivery(),
		commands.PaymentDetails{TransactionID: "pi_123"}, nil,
	)
	require.Error(t, err)
}

func TestPlaceOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.PlaceOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
