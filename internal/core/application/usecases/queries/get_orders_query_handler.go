package queries

import (
	"context"
	"database/sql"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order book from the database. The
// stored rows hold only the creation instant and the optional admin
// override; the effective step and percent are derived per row.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order book queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)
	now := time.Now()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			client_name,
			mode,
			total,
			created_at,
			step_override
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var overrideKey sql.NullString

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.ClientName,
			&resp.Mode,
			&resp.Total,
			&resp.CreatedAt,
			&overrideKey,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		progress, progErr := deriveProgress(resp.CreatedAt, overrideKey, now)
		if progErr != nil {
			return nil, progErr
		}
		resp.Progress = progress
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// deriveProgress maps a stored creation instant and override key onto the
// progress read model.
func deriveProgress(createdAt time.Time, overrideKey sql.NullString, now time.Time) (order.Progress, error) {
	var override *order.Step
	if overrideKey.Valid {
		step, err := order.StepFromKey(overrideKey.String)
		if err != nil {
			return order.Progress{}, err
		}
		override = &step
	}
	return order.ComputeProgress(&createdAt, override, now), nil
}
