// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/pkg/guard"
)

var ErrGetClientsQueryIsNotConstructed = errors.New(
	"GetClientsQuery must be created via NewGetClientsQuery constructor",
)

// GetClientsQuery retrieves the client directory.
type GetClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetClientsQuery creates a query to retrieve all clients.
func NewGetClientsQuery() GetClientsQuery {
	return GetClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientsQueryIsNotConstructed)
}

// GetClientsQueryResponse represents one client in the read model.
type GetClientsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
