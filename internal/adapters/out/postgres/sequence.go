package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// orderNumberPrefix is the historical prefix of every business reference.
const orderNumberPrefix = "ALKN"

// GormOrderNumberSequence produces order references from a persisted
// counter row. The increment uses UPDATE ... RETURNING, so concurrent
// transactions serialize on the row lock and numbers come out strictly
// increasing. A reference reserved inside a rolled back transaction is
// released with it.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

// NewGormOrderNumberSequence creates a sequence over the given connection,
// which is expected to be the transaction of the owning unit of work.
func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next reserves and returns the next reference, zero-padded to three
// digits ("ALKN007"). Beyond 999 the number simply grows wider.
func (s *GormOrderNumberSequence) Next(ctx context.Context) (string, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		UPDATE order_counters
		SET value = value + 1
		WHERE name = ?
		RETURNING value
	`, orderNumberPrefix).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%03d", orderNumberPrefix, value), nil
}
