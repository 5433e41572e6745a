package queries

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order book with the shipment progress of each
// order derived at read time.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents one order in the list read model. The
// progress fields are computed from the stored creation instant and override
// at query time, never persisted.
type GetOrdersQueryResponse struct {
	ID         kernel.UUID
	Number     string
	ClientName string
	Mode       string
	Total      float64
	CreatedAt  time.Time
	Progress   order.Progress
}
