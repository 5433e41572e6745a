package queries

import (
	"errors"

	"negoce/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the headline figures for the dashboard.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard statistics.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse holds the dashboard counters. The struct
// is JSON-encoded as-is into the stats cache.
type GetDashboardStatsQueryResponse struct {
	ClientCount     int64   `json:"client_count"`
	OrderCount      int64   `json:"order_count"`
	CotationCount   int64   `json:"cotation_count"`
	Revenue         float64 `json:"revenue"`
	Expense         float64 `json:"expense"`
	Balance         float64 `json:"balance"`
	OrderBookValue  float64 `json:"order_book_value"`
	ServedFromCache bool    `json:"-"`
}
