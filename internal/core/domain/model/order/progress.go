package order

import (
	"math"
	"time"
)

// DeliverySLADays is the fixed service-level estimate used to derive the
// estimated delivery date and the percentage scale. It is independent of the
// shipping mode.
const DeliverySLADays = 8

// StaleCloseAfterDays is how long past the estimated delivery date an order
// may stay undelivered before the auto-close rule force-sets Delivered.
const StaleCloseAfterDays = 10

// Elapsed-day upper bounds and percentage caps per stage.
const (
	paidMaxDays      = 2
	warehouseMaxDays = 3
	transitMaxDays   = 8

	paidPercentCap      = 20
	warehousePercentCap = 50
	transitPercentCap   = 80
)

// Progress is the derived shipment state of an order at a given instant.
// It is a pure value: recomputing it with the same inputs always yields the
// same result, and computing it has no side effects.
type Progress struct {
	// Step is the lifecycle stage after applying the precedence rules.
	Step Step

	// Percent is the completion percentage in [0, 100].
	Percent int

	// DaysElapsed is the whole number of days since creation. Partial days
	// truncate toward zero; a creation instant in the future yields a
	// negative count (the percentage still floors at 0).
	DaysElapsed int

	// EstimatedDelivery is createdAt plus the delivery SLA, or nil when the
	// order has no creation timestamp.
	EstimatedDelivery *time.Time
}

// ComputeProgress derives the shipment stage and completion percentage of an
// order from its creation instant, an optional admin step override, and the
// current time.
//
// Precedence between the three sources of truth, highest first:
//  1. admin override — replaces the step unconditionally
//  2. staleness auto-close — Delivered once the estimate is more than
//     StaleCloseAfterDays in the past
//  3. elapsed-time classification
//
// Whatever the source, a final step of Delivered forces the percentage to
// 100. A missing creation timestamp degrades to the zero-progress state
// rather than failing: this function never returns an error.
func ComputeProgress(createdAt *time.Time, override *Step, now time.Time) Progress {
	if createdAt == nil || createdAt.IsZero() {
		progress := Progress{Step: StepPaid, Percent: 0, DaysElapsed: 0}
		applyOverride(&progress, override)
		return progress
	}

	daysElapsed := int(math.Floor(now.Sub(*createdAt).Hours() / 24))
	estimated := createdAt.Add(DeliverySLADays * 24 * time.Hour)

	step, percent := classifyByElapsedDays(daysElapsed)

	if isStale(estimated, now) && !step.IsFinal() {
		step = StepDelivered
	}

	progress := Progress{
		Step:              step,
		Percent:           percent,
		DaysElapsed:       daysElapsed,
		EstimatedDelivery: &estimated,
	}
	applyOverride(&progress, override)
	return progress
}

// classifyByElapsedDays maps a day count onto a stage and its capped
// percentage. The raw percentage is daysElapsed/SLA scaled to 100, floored at
// 0, capped per band, and rounded half-to-even (a 1-day order reports 12%).
func classifyByElapsedDays(daysElapsed int) (Step, int) {
	raw := float64(daysElapsed) / DeliverySLADays * 100

	switch {
	case daysElapsed <= paidMaxDays:
		return StepPaid, cappedPercent(raw, paidPercentCap)
	case daysElapsed <= warehouseMaxDays:
		return StepWarehouse, cappedPercent(raw, warehousePercentCap)
	case daysElapsed <= transitMaxDays:
		return StepInTransit, cappedPercent(raw, transitPercentCap)
	default:
		return StepDelivered, 100
	}
}

func cappedPercent(raw, cap float64) int {
	if raw < 0 {
		raw = 0
	}
	return int(math.RoundToEven(math.Min(raw, cap)))
}

// isStale reports whether the estimated delivery date lies more than
// StaleCloseAfterDays in the past.
func isStale(estimated, now time.Time) bool {
	return now.Sub(estimated) > StaleCloseAfterDays*24*time.Hour
}

// applyOverride applies the admin step override (highest precedence) and the
// Delivered-forces-100 rule.
func applyOverride(progress *Progress, override *Step) {
	if override != nil && override.Validate() == nil {
		progress.Step = *override
	}
	if progress.Step.IsFinal() {
		progress.Percent = 100
	}
}
