// Package finance holds the Transaction aggregate for the cash ledger.
// Transactions are append-only records; the revenue, expense and balance
// figures are derived by summing over the kind.
package finance

import (
	"fmt"

	"negoce/internal/pkg/errs"
)

// Kind classifies a transaction as money coming in or going out.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Revenue is money received.
	Revenue

	// Expense is money spent.
	Expense
)

func getKindKeys() map[Kind]string {
	return map[Kind]string{
		Revenue: "revenu",
		Expense: "depense",
	}
}

// KindFromKey parses a stored wire key into a Kind.
func KindFromKey(key string) (Kind, error) {
	for kind, k := range getKindKeys() {
		if k == key {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transaction kind",
		fmt.Errorf("%q is not a known transaction kind", key),
	)
}

// Validate checks that the Kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := getKindKeys()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transaction kind",
			fmt.Errorf("%d is not a valid transaction kind", k),
		)
	}
	return nil
}

// String returns the wire key stored alongside transactions.
func (k Kind) String() string {
	if key, ok := getKindKeys()[k]; ok {
		return key
	}
	return "Unknown"
}
