package queries

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/guard"
)

var ErrGetFinanceSummaryQueryIsNotConstructed = errors.New(
	"GetFinanceSummaryQuery must be created via NewGetFinanceSummaryQuery constructor",
)

// GetFinanceSummaryQuery retrieves the ledger entries with their running
// totals.
type GetFinanceSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFinanceSummaryQuery creates a query for the ledger summary.
func NewGetFinanceSummaryQuery() GetFinanceSummaryQuery {
	return GetFinanceSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFinanceSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetFinanceSummaryQueryIsNotConstructed)
}

// FinanceEntry is one ledger row in the read model.
type FinanceEntry struct {
	ID        kernel.UUID
	Kind      string
	Label     string
	Amount    float64
	CreatedAt time.Time
}

// GetFinanceSummaryQueryResponse is the ledger read model: entries newest
// first plus the aggregated figures. The formatted fields carry the fr-FR
// style USD rendering used on screen.
type GetFinanceSummaryQueryResponse struct {
	Entries          []FinanceEntry
	Revenue          float64
	Expense          float64
	Balance          float64
	FormattedRevenue string
	FormattedExpense string
	FormattedBalance string
}
