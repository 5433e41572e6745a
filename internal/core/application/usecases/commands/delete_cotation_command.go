package commands

import (
	"errors"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/guard"
)

var ErrDeleteCotationCommandIsNotConstructed = errors.New(
	"DeleteCotationCommand must be created via NewDeleteCotationCommand constructor",
)

// DeleteCotationCommand represents a request to discard a quotation.
type DeleteCotationCommand struct { //nolint:recvcheck //using for validation
	cotationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCotationCommand creates a command to delete a cotation.
func NewDeleteCotationCommand(cotationID kernel.UUID) (DeleteCotationCommand, error) {
	cmd := DeleteCotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCotationID(cotationID); err != nil {
		return DeleteCotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCotationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCotationCommandIsNotConstructed)
}

// CotationID returns the identifier of the cotation to delete.
func (c DeleteCotationCommand) CotationID() kernel.UUID {
	return c.cotationID
}

func (c *DeleteCotationCommand) setCotationID(cotationID kernel.UUID) error {
	if err := cotationID.Validate(); err != nil {
		return err
	}

	c.cotationID = cotationID
	return nil
}
