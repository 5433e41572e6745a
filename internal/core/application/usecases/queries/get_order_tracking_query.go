package queries

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the full tracking record of one order:
// identity, lines, and the derived shipment progress.
type GetOrderTrackingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for one order's tracking record.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	q := GetOrderTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	q.orderID = orderID
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTrackingQueryResponse is the tracking read model shown on the
// order detail screen. StepLabel is the French display label for the
// effective step.
type GetOrderTrackingQueryResponse struct {
	ID         kernel.UUID
	Number     string
	ClientName string
	Mode       string
	Lines      []product.Line
	Total      float64
	CreatedAt  time.Time
	Progress   order.Progress
	StepLabel  string
}
