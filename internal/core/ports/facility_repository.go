package ports

import (
	"context"

	"lastmile/internal/core/domain/model/facility"
)

// FacilityRepository defines the persistence contract for the drop-off
// facility directory.
type FacilityRepository interface {
	// Add persists a new facility to the directory.
	Add(ctx context.Context, facility *facility.Facility) error

	// Get retrieves a facility by its directory identifier.
	// Returns errs.ErrObjectNotFound when no facility with that id exists.
	Get(ctx context.Context, id int64) (*facility.Facility, error)

	// GetAll retrieves the whole directory in insertion order. The quoting
	// engine ranks the result by distance per request; the directory is
	// small and rarely mutated.
	GetAll(ctx context.Context) ([]*facility.Facility, error)
}
