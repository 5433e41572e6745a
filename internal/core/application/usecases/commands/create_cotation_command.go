package commands

import (
	"errors"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/pkg/guard"
)

var (
	ErrCreateCotationCommandIsNotConstructed = errors.New(
		"CreateCotationCommand must be created via NewCreateCotationCommand constructor",
	)
	ErrCotationLinesAreRequired = errors.New("at least one product line is required")
)

// CreateCotationCommand represents a request to prepare a priced quotation
// for a client. Lines missing an explicit commission get the sales default.
type CreateCotationCommand struct { //nolint:recvcheck //using for validation
	cotationID kernel.UUID
	clientID   kernel.UUID
	mode       shipping.Mode
	lines      []product.Line

	guard guard.ConstructorGuard
}

// NewCreateCotationCommand creates a command to register a new cotation.
func NewCreateCotationCommand(
	cotationID kernel.UUID,
	clientID kernel.UUID,
	mode shipping.Mode,
	lines []product.Line,
) (CreateCotationCommand, error) {
	cmd := CreateCotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCotationID(cotationID),
		cmd.setClientID(clientID),
		cmd.setMode(mode),
		cmd.setLines(lines, mode),
	); err != nil {
		return CreateCotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCotationCommand) Validate() error {
	return c.guard.Validate(ErrCreateCotationCommandIsNotConstructed)
}

// CotationID returns the identifier for the new cotation.
func (c CreateCotationCommand) CotationID() kernel.UUID {
	return c.cotationID
}

// ClientID returns the identifier of the quoted client.
func (c CreateCotationCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Mode returns the quoted expedition mode.
func (c CreateCotationCommand) Mode() shipping.Mode {
	return c.mode
}

// Lines returns the quoted product rows, commission defaults applied.
func (c CreateCotationCommand) Lines() []product.Line {
	return c.lines
}

func (c *CreateCotationCommand) setCotationID(cotationID kernel.UUID) error {
	if err := cotationID.Validate(); err != nil {
		return err
	}

	c.cotationID = cotationID
	return nil
}

func (c *CreateCotationCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateCotationCommand) setMode(mode shipping.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateCotationCommand) setLines(lines []product.Line, mode shipping.Mode) error {
	if len(lines) == 0 {
		return ErrCotationLinesAreRequired
	}

	needsDimensions := !mode.IsAir()
	normalized := make([]product.Line, 0, len(lines))
	var failures []error
	for _, line := range lines {
		if line.CommissionPercent == 0 {
			line.CommissionPercent = product.DefaultCommissionPercent
		}
		if err := product.ValidateLine(line, needsDimensions); err != nil {
			failures = append(failures, err)
			continue
		}
		normalized = append(normalized, line)
	}
	if err := errors.Join(failures...); err != nil {
		return err
	}

	c.lines = normalized
	return nil
}
