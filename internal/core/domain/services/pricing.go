package services

import (
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/pkg/errs"
)

const (
	// DefaultAirPerKg is the air freight rate in USD per kilogram.
	DefaultAirPerKg = 29.0

	// DefaultSeaPerM3 is the sea freight rate in USD per cubic meter.
	DefaultSeaPerM3 = 600.0
)

// Tariff is a pricing calculator configured with the freight rates in force.
// It is a pure value: every method recomputes from its inputs, never stores
// state, and never fails. Malformed numeric inputs (NaN, infinities) degrade
// to zero contributions; rejecting bad lines is the caller's concern via
// product.ValidateLine.
//
// Pricing rules:
//   - unit price = displayed price × (1 + commission% / 100)
//   - freight    = weightKg × airPerKg          for air shipments
//   - freight    = volumeM³ × seaPerM3          otherwise
//   - line total = (unit price + freight) × quantity
type Tariff struct {
	airPerKg float64
	seaPerM3 float64
}

// NewTariff creates a Tariff with the given rates. Both rates must be
// strictly positive.
func NewTariff(airPerKg, seaPerM3 float64) (Tariff, error) {
	if airPerKg <= 0 {
		return Tariff{}, errs.NewValueIsOutOfRangeError("airPerKg", airPerKg, 0, "unbounded")
	}
	if seaPerM3 <= 0 {
		return Tariff{}, errs.NewValueIsOutOfRangeError("seaPerM3", seaPerM3, 0, "unbounded")
	}
	return Tariff{airPerKg: airPerKg, seaPerM3: seaPerM3}, nil
}

// DefaultTariff returns the Tariff with the canonical rates.
func DefaultTariff() Tariff {
	return Tariff{airPerKg: DefaultAirPerKg, seaPerM3: DefaultSeaPerM3}
}

// AirPerKg returns the configured air freight rate.
func (t Tariff) AirPerKg() float64 {
	return t.airPerKg
}

// SeaPerM3 returns the configured sea freight rate.
func (t Tariff) SeaPerM3() float64 {
	return t.seaPerM3
}

// Freight computes the per-unit freight cost of a line for the given mode.
func (t Tariff) Freight(line product.Line, mode shipping.Mode) float64 {
	if mode.IsAir() {
		return product.Num(line.WeightKg) * t.airPerKg
	}
	return line.VolumeM3() * t.seaPerM3
}

// UnitTotal computes the commission-marked-up price of a single unit,
// freight excluded.
func (t Tariff) UnitTotal(line product.Line) float64 {
	price := product.Num(line.DisplayedPrice)
	commission := product.Num(line.CommissionPercent)
	return price * (1 + commission/100)
}

// LineTotal computes the full price of a line: marked-up unit price plus
// per-unit freight, times the quantity. A zero quantity yields zero.
func (t Tariff) LineTotal(line product.Line, mode shipping.Mode) float64 {
	unit := t.UnitTotal(line) + t.Freight(line, mode)
	return unit * float64(line.Quantity)
}

// GrandTotal sums the line totals of a whole quotation. It recomputes from
// scratch on every call; stored totals are only a cache of this figure.
func (t Tariff) GrandTotal(lines []product.Line, mode shipping.Mode) float64 {
	var total float64
	for _, line := range lines {
		total += t.LineTotal(line, mode)
	}
	return total
}
