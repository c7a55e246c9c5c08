package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves the home-delivery backlog: pending
// orders that require a courier but have none yet. Used by the operations
// endpoint and by the assignment retry job.
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query for the unassigned backlog.
// This is a parameterless query.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse is one backlog row: enough to identify
// the order and its destination without loading the aggregate.
type GetUnassignedOrdersQueryResponse struct {
	ID              kernel.UUID
	ExternalOrderID string
	ShopDomain      string
	StoreAddress    string
	Street          string
	Postcode        string
	City            string
	Parcels         int
	CreatedAt       time.Time
}
