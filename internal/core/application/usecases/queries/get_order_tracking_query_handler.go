package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"
	"negoce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler retrieves one order's tracking record.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the tracking query. Returns errs.ErrObjectNotFound when
// the order does not exist.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	var resp GetOrderTrackingQueryResponse
	var id uuid.UUID
	var overrideKey sql.NullString
	var linesJSON []byte

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			client_name,
			mode,
			lines,
			total,
			created_at,
			step_override
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Number,
		&resp.ClientName,
		&resp.Mode,
		&linesJSON,
		&resp.Total,
		&resp.CreatedAt,
		&overrideKey,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	resp.ID = orderID

	if len(linesJSON) > 0 {
		var lines []product.Line
		if err = json.Unmarshal(linesJSON, &lines); err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}
		resp.Lines = lines
	}

	progress, err := deriveProgress(resp.CreatedAt, overrideKey, time.Now())
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	resp.Progress = progress
	resp.StepLabel = progress.Step.Label()

	return resp, nil
}
