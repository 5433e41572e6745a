// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"negoce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CotationRepoFactory provides access to the cotation repository within a transaction.
	CotationRepoFactory interface {
		CotationRepository() ports.CotationRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// TransactionRepoFactory provides access to the ledger repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// EvaluatedProductRepoFactory provides access to the price snapshot repository within a transaction.
	EvaluatedProductRepoFactory interface {
		EvaluatedProductRepository() ports.EvaluatedProductRepository
	}

	// SequenceFactory provides access to the order number sequence within a transaction,
	// so a rolled back creation does not burn a reference.
	SequenceFactory interface {
		OrderNumberSequence() ports.OrderNumberSequence
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// OrderUoW manages transactions for order operations. Creation also
	// reads the client aggregate (for the denormalized name) and the
	// number sequence.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		SequenceFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CotationUoW manages transactions for cotation operations.
	CotationUoW interface {
		TxManager
		CotationRepoFactory
		ClientRepoFactory
	}

	// CotationUoWFactory creates new cotation unit of work instances.
	CotationUoWFactory interface {
		Create() CotationUoW
	}

	// ConversionUoW manages the cotation-to-order conversion, which spans
	// the cotation, order, price snapshot and sequence boundaries in a
	// single transaction.
	ConversionUoW interface {
		TxManager
		CotationRepoFactory
		OrderRepoFactory
		EvaluatedProductRepoFactory
		SequenceFactory
	}

	// ConversionUoWFactory creates new conversion unit of work instances.
	ConversionUoWFactory interface {
		Create() ConversionUoW
	}

	// FinanceUoW manages transactions for ledger operations.
	FinanceUoW interface {
		TxManager
		TransactionRepoFactory
	}

	// FinanceUoWFactory creates new finance unit of work instances.
	FinanceUoWFactory interface {
		Create() FinanceUoW
	}
)
