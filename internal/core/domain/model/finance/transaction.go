package finance

import (
	"errors"
	"fmt"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/errs"
)

var (
	// ErrTransactionIsNotConstructed is returned when a Transaction instance
	// was not created through NewTransaction or RestoreTransaction.
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")
)

// Transaction is a single ledger entry. Entries are never edited after
// recording; corrections are new entries of the opposite kind.
type Transaction struct {
	// id is the unique identifier for the transaction
	id kernel.UUID

	// kind classifies the entry as revenue or expense
	kind Kind

	// label describes what the money was for
	label string

	// amount is the positive USD value of the entry
	amount float64

	// createdAt is the instant the entry was recorded
	createdAt time.Time

	// isConstructed ensures the transaction was created via a constructor
	isConstructed bool
}

// NewTransaction creates a new ledger entry with validation. The amount must
// be strictly positive; the kind carries the sign.
func NewTransaction(
	id kernel.UUID,
	kind Kind,
	label string,
	amount float64,
	createdAt time.Time,
) (*Transaction, error) {
	t := &Transaction{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setKind(kind),
		t.setLabel(label),
		t.setAmount(amount),
		t.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransaction reconstructs a Transaction from persistence.
func RestoreTransaction(
	id kernel.UUID,
	kind Kind,
	label string,
	amount float64,
	createdAt time.Time,
) (*Transaction, error) {
	return NewTransaction(id, kind, label, amount, createdAt)
}

// Validate ensures the Transaction instance was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// IsEqual compares two transactions by their unique identifiers.
func (t *Transaction) IsEqual(other *Transaction) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// Kind returns the ledger classification.
func (t *Transaction) Kind() Kind {
	return t.kind
}

// Label returns the entry description.
func (t *Transaction) Label() string {
	return t.label
}

// Amount returns the positive USD value of the entry.
func (t *Transaction) Amount() float64 {
	return t.amount
}

// CreatedAt returns the recording instant.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// SignedAmount returns the amount with the sign implied by the kind:
// positive for revenue, negative for expense.
func (t *Transaction) SignedAmount() float64 {
	if t.kind == Expense {
		return -t.amount
	}
	return t.amount
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	t.kind = kind
	return nil
}

func (t *Transaction) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("transaction label")
	}
	t.label = label
	return nil
}

func (t *Transaction) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"transaction amount",
			fmt.Errorf("amount must be strictly positive, got %v", amount),
		)
	}
	t.amount = amount
	return nil
}

func (t *Transaction) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation timestamp")
	}
	t.createdAt = createdAt
	return nil
}
