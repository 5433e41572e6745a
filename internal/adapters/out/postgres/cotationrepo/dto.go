// Package cotationrepo provides data transfer objects and mapping functions
// for cotation persistence.
package cotationrepo

import (
	"encoding/json"
	"time"

	"negoce/internal/core/domain/model/cotation"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/core/domain/model/shipping"

	"github.com/google/uuid"
)

// CotationDTO represents the database structure for persisting cotation
// aggregates. Lines are stored as a JSONB snapshot, like orders.
type CotationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	ClientName  string
	Mode        string
	Lines       []byte `gorm:"type:jsonb"`
	TotalGlobal float64
	CreatedAt   time.Time
}

// TableName specifies the database table name for cotation entities.
func (CotationDTO) TableName() string {
	return "cotations"
}

func fromDomain(aggregate *cotation.Cotation) (CotationDTO, error) {
	linesJSON, err := json.Marshal(aggregate.Lines())
	if err != nil {
		return CotationDTO{}, err
	}

	return CotationDTO{
		ID:          aggregate.ID().Bytes(),
		ClientID:    aggregate.ClientID().Bytes(),
		ClientName:  aggregate.ClientName(),
		Mode:        aggregate.Mode().String(),
		Lines:       linesJSON,
		TotalGlobal: aggregate.TotalGlobal(),
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}

func toDomain(dto CotationDTO) (*cotation.Cotation, error) {
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

	return cotation.RestoreCotation(
		id, clientID, dto.ClientName, mode, lines, dto.TotalGlobal, dto.CreatedAt)
}
