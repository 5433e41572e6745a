package productrepo

import (
	"context"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormEvaluatedProductRepository implements EvaluatedProductRepository
// using GORM.
type GormEvaluatedProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEvaluatedProductRepository creates a new GORM snapshot repository.
func NewGormEvaluatedProductRepository(db *gorm.DB, tracker aggregateTracker) *GormEvaluatedProductRepository {
	return &GormEvaluatedProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new price snapshot to the database.
func (r *GormEvaluatedProductRepository) Add(ctx context.Context, aggregate *product.EvaluatedProduct) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
