package commands

import (
	"errors"

	"negoce/internal/pkg/guard"
)

var ErrCloseStaleOrdersCommandIsNotConstructed = errors.New(
	"CloseStaleOrdersCommand must be created via NewCloseStaleOrdersCommand constructor",
)

// CloseStaleOrdersCommand triggers the stale-order sweep: any order whose
// estimated delivery date is long past and whose effective stage is still
// not Delivered gets force-closed. This is a parameterless command run on a
// schedule.
type CloseStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCloseStaleOrdersCommand creates a new command to trigger the sweep.
func NewCloseStaleOrdersCommand() CloseStaleOrdersCommand {
	return CloseStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CloseStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCloseStaleOrdersCommandIsNotConstructed)
}
