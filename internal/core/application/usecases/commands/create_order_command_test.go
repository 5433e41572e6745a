package commands_test

import (
	"testing"

	"negoce/internal/core/application/usecases/commands"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airLine() product.Line {
	return product.Line{
		Designation:       "Chargeur USB-C",
		DisplayedPrice:    100,
		CommissionPercent: 25,
		WeightKg:          5,
		Quantity:          2,
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	lines := []product.Line{airLine()}

	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, shipping.Air, lines)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, shipping.Air, cmd.Mode())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), shipping.Air, []product.Line{airLine()})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipping.Air, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}

func TestNewCreateOrderCommand_NegativePrice(t *testing.T) {
	line := airLine()
	line.DisplayedPrice = -1

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipping.Air, []product.Line{line})

	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestNewCreateOrderCommand_SeaWithoutDimensions(t *testing.T) {
	line := airLine() // weight only, no dimensions

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipping.Sea, []product.Line{line})

	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrMissingDimensions)
}

func TestNewCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
