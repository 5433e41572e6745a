package commands

import (
	"errors"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/guard"
)

var ErrConvertCotationCommandIsNotConstructed = errors.New(
	"ConvertCotationCommand must be created via NewConvertCotationCommand constructor",
)

// ConvertCotationCommand represents the acceptance of a quotation: the
// cotation becomes an order, each line is snapshotted as an evaluated
// product at its final price, and the cotation itself disappears. All of it
// happens in one transaction.
type ConvertCotationCommand struct { //nolint:recvcheck //using for validation
	cotationID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConvertCotationCommand creates a command to convert a cotation into an
// order with the given identifier.
func NewConvertCotationCommand(cotationID, orderID kernel.UUID) (ConvertCotationCommand, error) {
	cmd := ConvertCotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCotationID(cotationID),
		cmd.setOrderID(orderID),
	); err != nil {
		return ConvertCotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConvertCotationCommand) Validate() error {
	return c.guard.Validate(ErrConvertCotationCommandIsNotConstructed)
}

// CotationID returns the identifier of the cotation to convert.
func (c ConvertCotationCommand) CotationID() kernel.UUID {
	return c.cotationID
}

// OrderID returns the identifier for the resulting order.
func (c ConvertCotationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConvertCotationCommand) setCotationID(cotationID kernel.UUID) error {
	if err := cotationID.Validate(); err != nil {
		return err
	}

	c.cotationID = cotationID
	return nil
}

func (c *ConvertCotationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
