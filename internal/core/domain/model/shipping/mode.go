// Package shipping defines the expedition mode shared by orders and
// cotations. The mode drives freight pricing (per-kilogram for air,
// per-cubic-meter otherwise) and is stored with its French wire key.
package shipping

import (
	"fmt"

	"negoce/internal/pkg/errs"
)

// Mode represents how a shipment travels from the supplier to the customer.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// Air shipments are priced by weight.
	Air

	// Sea shipments ("Maritime") are priced by volume.
	Sea

	// Land shipments ("Terrestre") are priced by volume, like sea freight.
	Land
)

func getModeKeys() map[Mode]string {
	return map[Mode]string{
		Air:  "Air",
		Sea:  "Maritime",
		Land: "Terrestre",
	}
}

// ModeFromKey parses a stored wire key into a Mode.
// Returns an error for unrecognized keys.
func ModeFromKey(key string) (Mode, error) {
	for mode, k := range getModeKeys() {
		if k == key {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipping mode",
		fmt.Errorf("%q is not a known expedition mode", key),
	)
}

// Validate checks that the Mode is one of the defined expedition modes.
func (m Mode) Validate() error {
	if _, ok := getModeKeys()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping mode",
			fmt.Errorf("%d is not a valid expedition mode", m),
		)
	}
	return nil
}

// String returns the wire key stored alongside orders and cotations.
func (m Mode) String() string {
	if key, ok := getModeKeys()[m]; ok {
		return key
	}
	return "Unknown"
}

// IsAir reports whether freight for this mode is priced by weight.
func (m Mode) IsAir() bool {
	return m == Air
}
