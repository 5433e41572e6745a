// Package product holds the product line records carried by orders and
// cotations, together with their validation rules, and the evaluated product
// aggregate produced when a cotation is converted into an order.
package product

import (
	"errors"
	"math"

	"negoce/internal/pkg/errs"
)

// Validation errors surfaced by ValidateLine. The pricing computation itself
// never rejects a line; callers that want malformed persisted data surfaced
// instead of silently zeroed run ValidateLine first.
var (
	ErrNegativePrice     = errs.NewValueIsInvalidError("displayed price is negative")
	ErrNegativeQuantity  = errs.NewValueIsInvalidError("quantity is negative")
	ErrMissingDimensions = errs.NewValueIsRequiredError("dimensions are required for volume-priced freight")
)

// Line is one product row inside an order or a cotation. It is a plain
// record: the pricing and progress engines consume it as an immutable
// snapshot, and edits replace the whole value. Numeric fields are defensively
// normalized (non-finite values count as 0) rather than validated here.
type Line struct {
	// Designation is the free-text product name shown on documents.
	Designation string

	// ProductURL is the supplier listing the price was read from.
	ProductURL string

	// ImageURL points at the uploaded product photo, if any.
	ImageURL string

	// DisplayedPrice is the supplier unit price before commission and freight.
	DisplayedPrice float64

	// CommissionPercent is the markup applied to the displayed price.
	// Sales flows default it to 25.
	CommissionPercent float64

	// WeightKg is used for air freight.
	WeightKg float64

	// HeightCm, WidthCm and LengthCm derive the volume for sea freight.
	HeightCm float64
	WidthCm  float64
	LengthCm float64

	// Quantity is the ordered unit count.
	Quantity int
}

// DefaultCommissionPercent is applied when a sales flow creates a line
// without an explicit commission.
const DefaultCommissionPercent = 25

// VolumeM3 converts the centimeter dimensions into cubic meters.
// Missing or non-finite dimensions count as zero.
func (l Line) VolumeM3() float64 {
	return Num(l.HeightCm) * Num(l.WidthCm) * Num(l.LengthCm) / 1_000_000
}

// Num normalizes a possibly malformed numeric field: NaN and infinities
// become 0, everything else passes through. This mirrors the defensive
// parse-or-zero behavior the capture flows rely on.
func Num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ValidateLine checks a line against the rules the computation deliberately
// does not enforce. needsDimensions should be true when the line will be
// priced by volume (sea or land freight). All violations are reported
// together via errors.Join.
func ValidateLine(l Line, needsDimensions bool) error {
	var failures []error

	if Num(l.DisplayedPrice) < 0 {
		failures = append(failures, ErrNegativePrice)
	}
	if l.Quantity < 0 {
		failures = append(failures, ErrNegativeQuantity)
	}
	if needsDimensions && l.VolumeM3() <= 0 {
		failures = append(failures, ErrMissingDimensions)
	}

	return errors.Join(failures...)
}
