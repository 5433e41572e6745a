// Package client holds the Client aggregate: the people and businesses
// orders and cotations are prepared for. Orders reference clients by
// identifier and keep the name only as a display cache, so renaming a client
// here never rewrites order history.
package client

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/errs"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

// Client represents a customer of the trading desk. Only the name is
// required; phone, email and address are contact details filled in as they
// become known.
type Client struct {
	// id is the unique identifier for the client
	id kernel.UUID

	// name is the required display name
	name string

	// phone is an optional contact number
	phone string

	// email is an optional contact address
	email string

	// address is an optional postal address
	address string

	// createdAt is the immutable creation instant
	createdAt time.Time

	// isConstructed ensures the client was created via a constructor
	isConstructed bool
}

// NewClient creates a new Client with validation.
func NewClient(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	address string,
	createdAt time.Time,
) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	c.email = email
	c.address = address
	return c, nil
}

// RestoreClient reconstructs a Client from persistence.
func RestoreClient(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	address string,
	createdAt time.Time,
) (*Client, error) {
	return NewClient(id, name, phone, email, address, createdAt)
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *Client) Name() string {
	return c.name
}

// Phone returns the contact number, possibly empty.
func (c *Client) Phone() string {
	return c.phone
}

// Email returns the contact address, possibly empty.
func (c *Client) Email() string {
	return c.email
}

// Address returns the postal address, possibly empty.
func (c *Client) Address() string {
	return c.address
}

// CreatedAt returns the immutable creation instant.
func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// Rename changes the display name. Existing orders keep the name they were
// created with.
func (c *Client) Rename(name string) error {
	return c.setName(name)
}

// UpdateContact replaces the optional contact details.
func (c *Client) UpdateContact(phone, email, address string) {
	c.phone = phone
	c.email = email
	c.address = address
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	c.name = name
	return nil
}

func (c *Client) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation timestamp")
	}
	c.createdAt = createdAt
	return nil
}
