package cotation

import (
	"errors"
	"fmt"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/pkg/errs"
)

var (
	// ErrCotationIsNotConstructed is returned when a Cotation instance was
	// not created through NewCotation or RestoreCotation.
	ErrCotationIsNotConstructed = errors.New("Cotation must be created via NewCotation constructor")
)

// Cotation is a priced quotation prepared for a client before any commitment.
// It carries the same product lines as an order but has no tracking
// lifecycle; its only transitions are editing, deletion, and conversion into
// an order. Conversion is a use-case level operation that copies the lines,
// snapshots each line as an evaluated product, and removes the cotation in
// the same transaction.
//
// Only weight-priced air freight and volume-priced sea freight are quoted.
type Cotation struct {
	// id is the unique identifier for the cotation
	id kernel.UUID

	// clientID references the client aggregate
	clientID kernel.UUID

	// clientName is a denormalized display cache, not a join key
	clientName string

	// mode determines the freight component of every line price
	mode shipping.Mode

	// lines are the quoted product rows
	lines []product.Line

	// totalGlobal is the stored grand total at the last recomputation
	totalGlobal float64

	// createdAt is the immutable creation instant
	createdAt time.Time

	// isConstructed ensures the cotation was created via a constructor
	isConstructed bool
}

// NewCotation creates a new Cotation with validation.
func NewCotation(
	id kernel.UUID,
	clientID kernel.UUID,
	clientName string,
	mode shipping.Mode,
	lines []product.Line,
	totalGlobal float64,
	createdAt time.Time,
) (*Cotation, error) {
	c := &Cotation{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setClient(clientID, clientName),
		c.setMode(mode),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	c.lines = lines
	c.totalGlobal = totalGlobal
	return c, nil
}

// RestoreCotation reconstructs a Cotation from persistence.
func RestoreCotation(
	id kernel.UUID,
	clientID kernel.UUID,
	clientName string,
	mode shipping.Mode,
	lines []product.Line,
	totalGlobal float64,
	createdAt time.Time,
) (*Cotation, error) {
	return NewCotation(id, clientID, clientName, mode, lines, totalGlobal, createdAt)
}

// Validate ensures the Cotation instance was properly constructed.
func (c *Cotation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCotationIsNotConstructed
	}
	return nil
}

// IsEqual compares two cotations by their unique identifiers.
func (c *Cotation) IsEqual(other *Cotation) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cotation's unique identifier.
func (c *Cotation) ID() kernel.UUID {
	return c.id
}

// ClientID returns the identifier of the quoted client.
func (c *Cotation) ClientID() kernel.UUID {
	return c.clientID
}

// ClientName returns the denormalized client display name.
func (c *Cotation) ClientName() string {
	return c.clientName
}

// Mode returns the quoted expedition mode.
func (c *Cotation) Mode() shipping.Mode {
	return c.mode
}

// Lines returns the quoted product rows.
func (c *Cotation) Lines() []product.Line {
	return c.lines
}

// TotalGlobal returns the stored grand total.
func (c *Cotation) TotalGlobal() float64 {
	return c.totalGlobal
}

// CreatedAt returns the immutable creation instant.
func (c *Cotation) CreatedAt() time.Time {
	return c.createdAt
}

// SetLines replaces the quoted rows during editing.
func (c *Cotation) SetLines(lines []product.Line) {
	c.lines = lines
}

// SetTotalGlobal stores a freshly computed grand total.
func (c *Cotation) SetTotalGlobal(total float64) {
	c.totalGlobal = total
}

func (c *Cotation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cotation) setClient(clientID kernel.UUID, clientName string) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	c.clientID = clientID
	c.clientName = clientName
	return nil
}

func (c *Cotation) setMode(mode shipping.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if mode == shipping.Land {
		return errs.NewValueIsInvalidErrorWithCause(
			"cotation mode",
			fmt.Errorf("cotations are quoted for air or sea freight only"),
		)
	}
	c.mode = mode
	return nil
}

func (c *Cotation) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation timestamp")
	}
	c.createdAt = createdAt
	return nil
}
