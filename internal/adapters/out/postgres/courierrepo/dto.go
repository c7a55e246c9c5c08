// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"github.com/google/uuid"

	"lastmile/internal/core/domain/model/courier"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Maps courier domain entities to relational database tables with proper foreign key relationships.
type CourierDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Active       bool             `gorm:"not null;index"`
	LastEta      string           `gorm:"type:varchar(5)"`
	ServiceTypes []ServiceTypeDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// ServiceTypeDTO represents one delivery family a courier handles.
// Links to courier via foreign key; a courier row owns its service type rows.
type ServiceTypeDTO struct {
	CourierID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceType int       `gorm:"primaryKey"`
}

// TableName specifies the database table name for courier service types.
func (ServiceTypeDTO) TableName() string {
	return "courier_services"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	courierID := aggregate.ID().Bytes()
	serviceTypes := make([]ServiceTypeDTO, 0, len(aggregate.ServiceTypes()))

	for _, t := range aggregate.ServiceTypes() {
		serviceTypes = append(serviceTypes, ServiceTypeDTO{
			CourierID:   courierID,
			ServiceType: int(t),
		})
	}

	return CourierDTO{
		ID:           courierID,
		Name:         aggregate.Name(),
		Active:       aggregate.IsActive(),
		LastEta:      aggregate.LastEta(),
		ServiceTypes: serviceTypes,
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate including the last reported ETA using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceTypes := make([]order.Type, 0, len(dto.ServiceTypes))
	for _, st := range dto.ServiceTypes {
		serviceTypes = append(serviceTypes, order.Type(st.ServiceType))
	}

	return courier.RestoreCourier(id, dto.Name, dto.Active, serviceTypes, dto.LastEta)
}
