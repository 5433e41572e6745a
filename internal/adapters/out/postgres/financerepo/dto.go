// Package financerepo provides data transfer objects and mapping functions
// for ledger persistence. Every row carries the application instance
// identifier it belongs to.
package financerepo

import (
	"time"

	"negoce/internal/core/domain/model/finance"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting ledger
// entries.
type TransactionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppID     string    `gorm:"index"`
	Kind      string
	Label     string
	Amount    float64
	CreatedAt time.Time
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(aggregate *finance.Transaction, appID string) TransactionDTO {
	return TransactionDTO{
		ID:        aggregate.ID().Bytes(),
		AppID:     appID,
		Kind:      aggregate.Kind().String(),
		Label:     aggregate.Label(),
		Amount:    aggregate.Amount(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

