package ports

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/kernel"
)

// ErrAddressNotFound is returned by Geocoder.Geocode when the geocoding
// service has no match for the address. Callers treat it the same as any
// other geocoding failure: fall back, never fail the quote.
var ErrAddressNotFound = errors.New("address not found")

// Geocoder resolves a free-form street address to geographic coordinates.
// Implementations must honor context cancellation; the quoting flow calls
// Geocode with a short deadline and falls back when it expires.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.Coordinates, error)
}
