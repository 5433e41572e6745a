// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Lines are stored as a JSONB document: they are read and
// written as one snapshot, never queried row by row. Progress is not stored
// at all; it derives from CreatedAt and StepOverride at read time.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex"`
	ClientID     uuid.UUID `gorm:"type:uuid;index"`
	ClientName   string
	Mode         string
	Lines        []byte `gorm:"type:jsonb"`
	Total        float64
	CreatedAt    time.Time
	StepOverride *string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	linesJSON, err := json.Marshal(aggregate.Lines())
	if err != nil {
		return OrderDTO{}, err
	}

	var overrideKey *string
	if step := aggregate.StepOverride(); step != nil {
		key := step.String()
		overrideKey = &key
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		ClientID:     aggregate.ClientID().Bytes(),
		ClientName:   aggregate.ClientName(),
		Mode:         aggregate.Mode().String(),
		Lines:        linesJSON,
		Total:        aggregate.Total(),
		CreatedAt:    aggregate.CreatedAt(),
		StepOverride: overrideKey,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	mode, err := shipping.ModeFromKey(dto.Mode)
	if err != nil {
		return nil, err
	}

	var lines []product.Line
	if len(dto.Lines) > 0 {
		if err = json.Unmarshal(dto.Lines, &lines); err != nil {
			return nil, err
		}
	}

	var override *order.Step
	if dto.StepOverride != nil {
		step, stepErr := order.StepFromKey(*dto.StepOverride)
		if stepErr != nil {
			return nil, stepErr
		}
		override = &step
	}

	return order.RestoreOrder(
		id, dto.Number, clientID, dto.ClientName, mode, lines, dto.Total, dto.CreatedAt, override)
}
