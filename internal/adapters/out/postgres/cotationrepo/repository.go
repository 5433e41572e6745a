package cotationrepo

import (
	"context"
	"errors"

	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCotationRepository implements CotationRepository using GORM.
type GormCotationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCotationRepository creates a new GORM cotation repository.
func NewGormCotationRepository(db *gorm.DB, tracker aggregateTracker) *GormCotationRepository {
	return &GormCotationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cotation to the database.
func (r *GormCotationRepository) Add(ctx context.Context, aggregate *cotation.Cotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cotation to the database.
func (r *GormCotationRepository) Update(ctx context.Context, aggregate *cotation.Cotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CotationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a cotation permanently.
func (r *GormCotationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CotationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cotation", id.String())
	}

	return nil
}

// Get retrieves a cotation by ID.
func (r *GormCotationRepository) Get(ctx context.Context, id kernel.UUID) (*cotation.Cotation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CotationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cotation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
