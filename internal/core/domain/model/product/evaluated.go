package product

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/errs"
)

// ErrEvaluatedProductIsNotConstructed is returned when an EvaluatedProduct
// was not created through NewEvaluatedProduct or RestoreEvaluatedProduct.
var ErrEvaluatedProductIsNotConstructed = errors.New(
	"EvaluatedProduct must be created via NewEvaluatedProduct constructor")

// EvaluatedProduct is the priced snapshot of a product line recorded when a
// cotation is converted into an order. It keeps the final all-in price so the
// sales team can track historical quotes independently of later tariff
// changes.
type EvaluatedProduct struct {
	id         kernel.UUID
	name       string
	imageURL   string
	finalPrice float64
	quantity   int
	createdAt  time.Time

	isConstructed bool
}

// NewEvaluatedProduct creates an evaluated product snapshot.
// The name is required; the final price comes from the pricing engine and is
// stored as computed, without re-validation.
func NewEvaluatedProduct(
	id kernel.UUID,
	name string,
	imageURL string,
	finalPrice float64,
	quantity int,
	createdAt time.Time,
) (*EvaluatedProduct, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}

	return &EvaluatedProduct{
		id:            id,
		name:          name,
		imageURL:      imageURL,
		finalPrice:    finalPrice,
		quantity:      quantity,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreEvaluatedProduct reconstructs an evaluated product from persistence.
func RestoreEvaluatedProduct(
	id kernel.UUID,
	name string,
	imageURL string,
	finalPrice float64,
	quantity int,
	createdAt time.Time,
) (*EvaluatedProduct, error) {
	return NewEvaluatedProduct(id, name, imageURL, finalPrice, quantity, createdAt)
}

// Validate ensures the instance came from a constructor.
func (p *EvaluatedProduct) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrEvaluatedProductIsNotConstructed
	}
	return nil
}

// ID returns the snapshot's unique identifier.
func (p *EvaluatedProduct) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *EvaluatedProduct) Name() string {
	return p.name
}

// ImageURL returns the uploaded product photo location, if any.
func (p *EvaluatedProduct) ImageURL() string {
	return p.imageURL
}

// FinalPrice returns the all-in line total recorded at conversion time.
func (p *EvaluatedProduct) FinalPrice() float64 {
	return p.finalPrice
}

// Quantity returns the unit count recorded at conversion time.
func (p *EvaluatedProduct) Quantity() int {
	return p.quantity
}

// CreatedAt returns the snapshot timestamp.
func (p *EvaluatedProduct) CreatedAt() time.Time {
	return p.createdAt
}
