package queries

import (
	"context"

	"negoce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientsQueryHandler retrieves the client directory from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetClientsQueryHandler creates a handler for client directory queries.
func NewGetClientsQueryHandler(db *gorm.DB) GetClientsQueryHandler {
	return GetClientsQueryHandler{db: db}
}

// Handle executes the query to retrieve all clients, sorted by name.
func (h GetClientsQueryHandler) Handle(
	ctx context.Context,
	query GetClientsQuery,
) ([]GetClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]GetClientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			email,
			address,
			created_at
		FROM clients
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetClientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Email,
			&resp.Address,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		clientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = clientID
		clients = append(clients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
