package financerepo

import (
	"context"

	"negoce/internal/core/domain/model/finance"
	"negoce/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
// The app identifier is fixed at construction and stamped on every row, so
// deployments sharing a database keep separate ledgers.
type GormTransactionRepository struct {
	db      *gorm.DB
	appID   string
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM ledger repository scoped
// to the given application instance.
func NewGormTransactionRepository(db *gorm.DB, appID string, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		appID:   appID,
		tracker: tracker,
	}
}

// Add saves a new ledger entry to the database.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *finance.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, r.appID)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
