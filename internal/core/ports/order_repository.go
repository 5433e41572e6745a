// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, the order number
// sequence, event publishing, caching, and document mailing.
package ports

import (
	"context"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order permanently. Orders are hard-deleted; there is
	// no tombstone or archive.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUndelivered retrieves the orders whose stored step override, if
	// any, is not the final Delivered stage. The stale-order sweep derives
	// the effective progress in memory before deciding which ones to close.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)
}

// OrderNumberSequence produces the human-facing order references. Numbers
// are strictly increasing and survive restarts; the adapter backs them with
// a persisted counter.
type OrderNumberSequence interface {
	// Next reserves and returns the next reference, e.g. "ALKN042".
	Next(ctx context.Context) (string, error)
}
