package commands

import (
	"errors"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one product line is required")
)

// CreateOrderCommand represents a request to register a new order for a
// client. The business reference is reserved by the handler from the
// persisted sequence, and the total is computed from the lines at the
// tariff in force.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	mode     shipping.Mode
	lines    []product.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Lines must be non-empty and each line must pass the validation rules for
// the chosen expedition mode.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	mode shipping.Mode,
	lines []product.Line,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setMode(mode),
		cmd.setLines(lines, mode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the ordering client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Mode returns the expedition mode.
func (c CreateOrderCommand) Mode() shipping.Mode {
	return c.mode
}

// Lines returns the product rows to register.
func (c CreateOrderCommand) Lines() []product.Line {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setMode(mode shipping.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateOrderCommand) setLines(lines []product.Line, mode shipping.Mode) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	needsDimensions := !mode.IsAir()
	var failures []error
	for _, line := range lines {
		if err := product.ValidateLine(line, needsDimensions); err != nil {
			failures = append(failures, err)
		}
	}
	if err := errors.Join(failures...); err != nil {
		return err
	}

	c.lines = lines
	return nil
}
