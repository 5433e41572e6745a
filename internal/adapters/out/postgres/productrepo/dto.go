// Package productrepo persists the evaluated product snapshots recorded
// when a cotation is converted into an order.
package productrepo

import (
	"time"

	"negoce/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// EvaluatedProductDTO represents the database structure for persisting
// price snapshots.
type EvaluatedProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	ImageURL   string
	FinalPrice float64
	Quantity   int
	CreatedAt  time.Time
}

// TableName specifies the database table name for price snapshots.
func (EvaluatedProductDTO) TableName() string {
	return "evaluated_products"
}

func fromDomain(aggregate *product.EvaluatedProduct) EvaluatedProductDTO {
	return EvaluatedProductDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		ImageURL:   aggregate.ImageURL(),
		FinalPrice: aggregate.FinalPrice(),
		Quantity:   aggregate.Quantity(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}
