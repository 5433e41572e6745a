package ports

import (
	"context"

	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
)

// CotationRepository defines the persistence contract for cotation
// aggregates.
type CotationRepository interface {
	// Add persists a new cotation aggregate to storage.
	Add(ctx context.Context, aggregate *cotation.Cotation) error

	// Update persists changes to an existing cotation aggregate.
	Update(ctx context.Context, aggregate *cotation.Cotation) error

	// Delete removes a cotation permanently. Conversion into an order calls
	// this inside the same transaction as the order insert.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a cotation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cotation.Cotation, error)
}

// EvaluatedProductRepository stores the per-line price snapshots taken when
// a cotation is converted into an order.
type EvaluatedProductRepository interface {
	// Add persists one evaluated product snapshot.
	Add(ctx context.Context, aggregate *product.EvaluatedProduct) error
}
