// Package facilityrepo provides data transfer objects and mapping functions for
// drop-off facility persistence. Facilities are reference data synced from the
// facility directory; the directory id is the primary key.
package facilityrepo

import (
	"lastmile/internal/core/domain/model/facility"
	"lastmile/internal/core/domain/model/kernel"
)

// FacilityDTO represents the database structure for persisting facilities.
type FacilityDTO struct {
	ID          int64          `gorm:"primaryKey;autoIncrement:false"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Address     string         `gorm:"not null"`
	Phone       string         `gorm:"type:varchar(32)"`
	Coordinates CoordinatesDTO `gorm:"embedded;embeddedPrefix:position_"`
}

// TableName specifies the database table name for facility entities.
func (FacilityDTO) TableName() string {
	return "facilities"
}

// CoordinatesDTO represents the embedded geographic position within the facility table.
type CoordinatesDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a facility domain entity to its database representation.
func fromDomain(aggregate *facility.Facility) FacilityDTO {
	return FacilityDTO{
		ID:      aggregate.ID(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Phone:   aggregate.Phone(),
		Coordinates: CoordinatesDTO{
			Latitude:  aggregate.Coordinates().Latitude(),
			Longitude: aggregate.Coordinates().Longitude(),
		},
	}
}

// toDomain converts a database DTO to a facility domain entity.
func toDomain(dto FacilityDTO) (*facility.Facility, error) {
	coordinates, err := kernel.NewCoordinates(dto.Coordinates.Latitude, dto.Coordinates.Longitude)
	if err != nil {
		return nil, err
	}

	return facility.NewFacility(dto.ID, dto.Name, dto.Address, dto.Phone, coordinates)
}
