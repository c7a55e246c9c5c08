package kernel

import (
	"errors"
	"fmt"
	"math"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusMeters is the mean Earth radius used for great-circle distance.
	earthRadiusMeters = 6371000.0
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use an improperly
// initialized Coordinates value. Coordinates must be created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates represents a geographic position as a latitude/longitude pair
// in decimal degrees. Coordinates is an immutable value object; the zero value
// is invalid and fails validation.
//
// Example:
//
//	pos, err := kernel.NewCoordinates(57.7089, 11.9746)
//	if err != nil {
//	    // handle validation error
//	}
//	meters, _ := pos.DistanceTo(other)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates with the specified latitude and longitude
// in decimal degrees. Latitude must be within [-90, 90] and longitude within
// [-180, 180]; returns an aggregated error otherwise.
func NewCoordinates(latitude float64, longitude float64) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(coords.setLatitude(latitude), coords.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Validate checks that the Coordinates were created via NewCoordinates.
// The zero value fails with ErrCoordinatesAreNotConstructed.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// String implements fmt.Stringer using six decimal places, roughly
// ten-centimeter precision.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.6f,%.6f)", c.latitude, c.longitude)
}

// IsEqual compares two positions for exact equality.
// Both values must be properly constructed.
func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.latitude == other.latitude && c.longitude == other.longitude, nil
}

// DistanceTo computes the great-circle (haversine) distance to another position
// and returns it in meters. The computation is pure and deterministic.
// Both values must be properly constructed.
func (c Coordinates) DistanceTo(other Coordinates) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := c.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - c.latitude) * math.Pi / 180
	dLon := (other.longitude - c.longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)), nil
}

// setLatitude sets the latitude with range validation.
// Pointer receiver is used intentionally for self-encapsulated construction.
func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
// Pointer receiver is used intentionally for self-encapsulated construction.
func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}
