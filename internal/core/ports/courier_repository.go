// Package ports defines the contracts between the application core and
// infrastructure: repositories for the delivery aggregates and the geocoder
// gateway. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"lastmile/internal/core/domain/model/courier"
	"lastmile/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllActive retrieves couriers currently on shift, in directory
	// order. The dispatch affinity pass depends on that order being stable
	// between calls.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)
}
