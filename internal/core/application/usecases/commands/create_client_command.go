package commands

import (
	"errors"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("client name is required")
)

// CreateClientCommand represents a request to register a new client.
// Only the name is mandatory; contact details may be filled in later.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	phone    string
	email    string
	address  string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
func NewCreateClientCommand(clientID kernel.UUID, name, phone, email, address string) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setName(name),
	); err != nil {
		return CreateClientCommand{}, err
	}

	cmd.phone = phone
	cmd.email = email
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identifier for the new client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the required display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Phone returns the optional contact number.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

// Email returns the optional contact address.
func (c CreateClientCommand) Email() string {
	return c.email
}

// Address returns the optional postal address.
func (c CreateClientCommand) Address() string {
	return c.address
}

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}
