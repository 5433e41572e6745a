package queries

import (
	"context"

	"negoce/internal/core/domain/model/finance"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFinanceSummaryQueryHandler retrieves the ledger for one application
// instance. Rows are scoped by the app identifier fixed at construction, so
// deployments sharing a database stay isolated.
type GetFinanceSummaryQueryHandler struct {
	db    *gorm.DB
	appID string
}

// NewGetFinanceSummaryQueryHandler creates a handler for ledger queries.
func NewGetFinanceSummaryQueryHandler(db *gorm.DB, appID string) GetFinanceSummaryQueryHandler {
	return GetFinanceSummaryQueryHandler{db: db, appID: appID}
}

// Handle executes the ledger query and aggregates the figures.
func (h GetFinanceSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetFinanceSummaryQuery,
) (GetFinanceSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFinanceSummaryQueryResponse{}, err
	}

	resp := GetFinanceSummaryQueryResponse{
		Entries: make([]FinanceEntry, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			label,
			amount,
			created_at
		FROM transactions
		WHERE app_id = ?
		ORDER BY created_at DESC
	`, h.appID).Rows()
	if err != nil {
		return GetFinanceSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry FinanceEntry
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Kind,
			&entry.Label,
			&entry.Amount,
			&entry.CreatedAt,
		)
		if err != nil {
			return GetFinanceSummaryQueryResponse{}, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetFinanceSummaryQueryResponse{}, idErr
		}
		entry.ID = entryID

		switch entry.Kind {
		case finance.Revenue.String():
			resp.Revenue += entry.Amount
		case finance.Expense.String():
			resp.Expense += entry.Amount
		}
		resp.Entries = append(resp.Entries, entry)
	}

	if err = rows.Err(); err != nil {
		return GetFinanceSummaryQueryResponse{}, err
	}

	resp.Balance = resp.Revenue - resp.Expense
	resp.FormattedRevenue = money.FormatUSD(resp.Revenue)
	resp.FormattedExpense = money.FormatUSD(resp.Expense)
	resp.FormattedBalance = money.FormatUSD(resp.Balance)

	return resp, nil
}
