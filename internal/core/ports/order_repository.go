package ports

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// ErrOrderAlreadyExists is returned by OrderRepository.Add when an order with
// the same external order id is already stored. The unique index on the
// external order id backs this guarantee, so the loser of a concurrent
// ingestion race observes this error as well.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns ErrOrderAlreadyExists when an order with the same external
	// order id is already stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its local unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByExternalID retrieves an order by the commerce platform's order id.
	// Returns errs.ErrObjectNotFound when no order with that id exists; the
	// ingestion flow uses this lookup as the fast path of the dedup gate.
	GetByExternalID(ctx context.Context, externalOrderID string) (*order.Order, error)

	// GetAllAssignedByCourier retrieves the courier's undelivered orders,
	// i.e. orders in Assigned status. Used by the dispatch affinity pass to
	// collect the courier's open pickup addresses.
	GetAllAssignedByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// GetAllPendingUnassigned retrieves home-delivery orders in Pending
	// status that have no courier yet, oldest first. Used by the assignment
	// retry job and the unassigned-orders read model.
	GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error)
}
