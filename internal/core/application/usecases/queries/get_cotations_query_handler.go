package queries

import (
	"context"
	"encoding/json"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCotationsQueryHandler retrieves the open quotations from the database.
type GetCotationsQueryHandler struct {
	db *gorm.DB
}

// NewGetCotationsQueryHandler creates a handler for quotation queries.
func NewGetCotationsQueryHandler(db *gorm.DB) GetCotationsQueryHandler {
	return GetCotationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all cotations, newest first.
func (h GetCotationsQueryHandler) Handle(
	ctx context.Context,
	query GetCotationsQuery,
) ([]GetCotationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cotations := make([]GetCotationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			mode,
			lines,
			total_global,
			created_at
		FROM cotations
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCotationsQueryResponse
		var id uuid.UUID
		var linesJSON []byte

		err = rows.Scan(
			&id,
			&resp.ClientName,
			&resp.Mode,
			&linesJSON,
			&resp.TotalGlobal,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		cotationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = cotationID

		if len(linesJSON) > 0 {
			var lines []product.Line
			if err = json.Unmarshal(linesJSON, &lines); err != nil {
				return nil, err
			}
			resp.Lines = lines
		}

		cotations = append(cotations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cotations, nil
}
