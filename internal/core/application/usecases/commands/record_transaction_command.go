package commands

import (
	"errors"

	"negoce/internal/core/domain/model/finance"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/guard"
)

var (
	ErrRecordTransactionCommandIsNotConstructed = errors.New(
		"RecordTransactionCommand must be created via NewRecordTransactionCommand constructor",
	)
	ErrTransactionLabelIsRequired = errors.New("transaction label is required")
	ErrTransactionAmountIsInvalid = errors.New("transaction amount must be greater than 0")
)

// RecordTransactionCommand represents a request to append one entry to the
// cash ledger.
type RecordTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.UUID
	kind          finance.Kind
	label         string
	amount        float64

	guard guard.ConstructorGuard
}

// NewRecordTransactionCommand creates a command to record a ledger entry.
func NewRecordTransactionCommand(
	transactionID kernel.UUID,
	kind finance.Kind,
	label string,
	amount float64,
) (RecordTransactionCommand, error) {
	cmd := RecordTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransactionID(transactionID),
		cmd.setKind(kind),
		cmd.setLabel(label),
		cmd.setAmount(amount),
	); err != nil {
		return RecordTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTransactionCommand) Validate() error {
	return c.guard.Validate(ErrRecordTransactionCommandIsNotConstructed)
}

// TransactionID returns the identifier for the new entry.
func (c RecordTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// Kind returns the ledger classification.
func (c RecordTransactionCommand) Kind() finance.Kind {
	return c.kind
}

// Label returns the entry description.
func (c RecordTransactionCommand) Label() string {
	return c.label
}

// Amount returns the positive USD value of the entry.
func (c RecordTransactionCommand) Amount() float64 {
	return c.amount
}

func (c *RecordTransactionCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}

	c.transactionID = transactionID
	return nil
}

func (c *RecordTransactionCommand) setKind(kind finance.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RecordTransactionCommand) setLabel(label string) error {
	if label == "" {
		return ErrTransactionLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *RecordTransactionCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrTransactionAmountIsInvalid
	}

	c.amount = amount
	return nil
}
