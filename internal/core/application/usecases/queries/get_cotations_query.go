package queries

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/pkg/guard"
)

var ErrGetCotationsQueryIsNotConstructed = errors.New(
	"GetCotationsQuery must be created via NewGetCotationsQuery constructor",
)

// GetCotationsQuery retrieves the open quotations.
type GetCotationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCotationsQuery creates a query to retrieve all cotations.
func NewGetCotationsQuery() GetCotationsQuery {
	return GetCotationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCotationsQuery) Validate() error {
	return q.guard.Validate(ErrGetCotationsQueryIsNotConstructed)
}

// GetCotationsQueryResponse represents one quotation in the read model.
type GetCotationsQueryResponse struct {
	ID          kernel.UUID
	ClientName  string
	Mode        string
	Lines       []product.Line
	TotalGlobal float64
	CreatedAt   time.Time
}
