package commands

import (
	"errors"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand represents a request to change a client's name or
// contact details. Existing orders keep the name they were created with.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	phone    string
	email    string
	address  string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to update an existing client.
func NewUpdateClientCommand(clientID kernel.UUID, name, phone, email, address string) (UpdateClientCommand, error) {
	cmd := UpdateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setClientID(clientID); err != nil {
		return UpdateClientCommand{}, err
	}
	if name == "" {
		return UpdateClientCommand{}, ErrClientNameIsRequired
	}

	cmd.name = name
	cmd.phone = phone
	cmd.email = email
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the identifier of the client to update.
func (c UpdateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the new display name.
func (c UpdateClientCommand) Name() string {
	return c.name
}

// Phone returns the new contact number.
func (c UpdateClientCommand) Phone() string {
	return c.phone
}

// Email returns the new contact address.
func (c UpdateClientCommand) Email() string {
	return c.email
}

// Address returns the new postal address.
func (c UpdateClientCommand) Address() string {
	return c.address
}

func (c *UpdateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
