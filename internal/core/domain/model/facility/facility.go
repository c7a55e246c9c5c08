// Package facility provides the Facility entity: a third-party drop-off point
// (parcel locker or staffed agent) eligible to receive locker-type deliveries.
// Facilities are static reference data, rarely mutated, and are ranked by
// great-circle distance from the shopper's destination at quote time.
package facility

import (
	"errors"
	"fmt"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// ErrFacilityIsNotConstructed is returned when using an improperly initialized Facility.
var ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")

// Facility represents a drop-off point with a fixed geographic position.
type Facility struct {
	// id is the directory identifier, embedded into locker service codes
	id int64
	// name is the display name shown on offers and labels
	name string
	// address is the street address shown to shoppers and couriers
	address string
	// phone is the contact number of the facility operator
	phone string
	// coordinates is the geographic position used for distance ranking
	coordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewFacility creates a Facility with validated identity, display data, and position.
func NewFacility(id int64, name, address, phone string, coordinates kernel.Coordinates) (*Facility, error) {
	f := &Facility{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setAddress(address),
		f.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate ensures the Facility was created via NewFacility.
func (f *Facility) Validate() error {
	if f == nil {
		return ErrFacilityIsNotConstructed
	}
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}

// ID returns the directory identifier of the facility.
func (f *Facility) ID() int64 {
	return f.id
}

// Name returns the display name of the facility.
func (f *Facility) Name() string {
	return f.name
}

// Address returns the street address of the facility.
func (f *Facility) Address() string {
	return f.address
}

// Phone returns the contact number of the facility operator; may be empty.
func (f *Facility) Phone() string {
	return f.phone
}

// Coordinates returns the geographic position of the facility.
func (f *Facility) Coordinates() kernel.Coordinates {
	return f.coordinates
}

func (f *Facility) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("facility id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	f.id = id
	return nil
}

func (f *Facility) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

func (f *Facility) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	f.address = address
	return nil
}

func (f *Facility) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	f.coordinates = coordinates
	return nil
}
