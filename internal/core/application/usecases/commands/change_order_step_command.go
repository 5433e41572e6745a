package commands

import (
	"errors"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/pkg/guard"
)

var ErrChangeOrderStepCommandIsNotConstructed = errors.New(
	"ChangeOrderStepCommand must be created via NewChangeOrderStepCommand constructor",
)

// ChangeOrderStepCommand represents an admin decision about an order's
// lifecycle stage. Setting a step records an override that wins over the
// elapsed-time classification; clearing it lets the classification apply
// again.
type ChangeOrderStepCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	step    *order.Step

	guard guard.ConstructorGuard
}

// NewChangeOrderStepCommand creates a command to override an order's stage.
func NewChangeOrderStepCommand(orderID kernel.UUID, step order.Step) (ChangeOrderStepCommand, error) {
	cmd := ChangeOrderStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangeOrderStepCommand{}, err
	}
	if err := step.Validate(); err != nil {
		return ChangeOrderStepCommand{}, err
	}

	cmd.step = &step
	return cmd, nil
}

// NewClearOrderStepCommand creates a command that removes the admin
// override so the stage derives from elapsed time again.
func NewClearOrderStepCommand(orderID kernel.UUID) (ChangeOrderStepCommand, error) {
	cmd := ChangeOrderStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangeOrderStepCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStepCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStepCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStepCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Step returns the stage to set, or nil when the override is being cleared.
func (c ChangeOrderStepCommand) Step() *order.Step {
	return c.step
}

func (c *ChangeOrderStepCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
