package order

import (
	"fmt"

	"negoce/internal/pkg/errs"
)

// Step represents the shipment lifecycle stage of an order.
// It implements a small state machine whose transitions are driven by three
// sources with an explicit precedence: admin override, staleness auto-close,
// and elapsed-time classification (see ComputeProgress).
//
// Stage order:
//
//	Paid ──> Warehouse ──> InTransit ──> Delivered
//
// Step values are persisted and exchanged with their historical French wire
// keys ("validé", "depotShenzen", "expeditionRDC", "receptionRDC").
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	StepUnknown Step = iota

	// StepPaid is the initial stage: payment received, order registered.
	StepPaid

	// StepWarehouse means the goods reached the Shenzhen warehouse.
	StepWarehouse

	// StepInTransit means the shipment left for the destination country.
	StepInTransit

	// StepDelivered is the final stage. Orders reach it by elapsed time,
	// by admin action, or by the stale-order auto-close rule.
	StepDelivered
)

func getStepKeys() map[Step]string {
	return map[Step]string{
		StepPaid:      "validé",
		StepWarehouse: "depotShenzen",
		StepInTransit: "expeditionRDC",
		StepDelivered: "receptionRDC",
	}
}

func getStepLabels() map[Step]string {
	return map[Step]string{
		StepPaid:      "Payé",
		StepWarehouse: "En cours",
		StepInTransit: "Prêt à être livré",
		StepDelivered: "Livré",
	}
}

// StepFromKey parses a stored wire key into a Step.
// Returns an error for unrecognized keys.
func StepFromKey(key string) (Step, error) {
	for step, k := range getStepKeys() {
		if k == key {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order step",
		fmt.Errorf("%q is not a known progress step", key),
	)
}

// Validate checks if the Step value is one of the defined stages.
func (s Step) Validate() error {
	if _, ok := getStepKeys()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order step",
			fmt.Errorf("%d is not a valid progress step", s),
		)
	}
	return nil
}

// String returns the wire key ("validé", "depotShenzen", ...).
// Implements fmt.Stringer; safe to call on any value.
func (s Step) String() string {
	if key, ok := getStepKeys()[s]; ok {
		return key
	}
	return "Unknown"
}

// Label returns the human-readable French label shown on tracking screens.
func (s Step) Label() string {
	if label, ok := getStepLabels()[s]; ok {
		return label
	}
	return "Inconnu"
}

// IsFinal reports whether the step is the terminal Delivered stage.
func (s Step) IsFinal() bool {
	return s == StepDelivered
}
