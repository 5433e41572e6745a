package ports

import (
	"context"

	"negoce/internal/core/domain/model/finance"
)

// TransactionRepository defines the persistence contract for ledger entries.
// Implementations scope all rows to the application instance they were
// constructed for, so two deployments sharing a database never see each
// other's ledger.
type TransactionRepository interface {
	// Add persists a new ledger entry.
	Add(ctx context.Context, aggregate *finance.Transaction) error
}
