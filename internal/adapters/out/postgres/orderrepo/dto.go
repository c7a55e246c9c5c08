// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The unique index on the external order id is the last line of defense
// against duplicate ingestion of the same platform event.
type OrderDTO struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ExternalOrderID string       `gorm:"uniqueIndex;not null"`
	ShopDomain      string       `gorm:"index"`
	StoreAddress    string
	OrderType       int
	Recipient       RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Parcels         int
	Note            string
	Status          int        `gorm:"index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	FacilityID      *int64
	FacilityName    string
	FacilityAddress string
	FacilityPhone   string
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO represents the embedded delivery address within the order table.
type RecipientDTO struct {
	Name     string
	Street   string
	Postcode string
	City     string
	Phone    string
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional courier assignment and
// facility snapshot.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ExternalOrderID: aggregate.ExternalOrderID(),
		ShopDomain:      aggregate.ShopDomain(),
		StoreAddress:    aggregate.StoreAddress(),
		OrderType:       int(aggregate.Type()),
		Recipient: RecipientDTO{
			Name:     aggregate.Recipient().Name(),
			Street:   aggregate.Recipient().Street(),
			Postcode: aggregate.Recipient().Postcode(),
			City:     aggregate.Recipient().City(),
			Phone:    aggregate.Recipient().Phone(),
		},
		Parcels:   aggregate.Parcels(),
		Note:      aggregate.Note(),
		Status:    int(aggregate.Status()),
		CourierID: courierID,
	}

	if snapshot := aggregate.Facility(); snapshot != nil {
		facilityID := snapshot.ID
		dto.FacilityID = &facilityID
		dto.FacilityName = snapshot.Name
		dto.FacilityAddress = snapshot.Address
		dto.FacilityPhone = snapshot.Phone
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, courier assignment,
// and facility snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	recipient, err := order.NewRecipient(
		dto.Recipient.Name,
		dto.Recipient.Street,
		dto.Recipient.Postcode,
		dto.Recipient.City,
		dto.Recipient.Phone,
	)
	if err != nil {
		return nil, err
	}

	var snapshot *order.FacilitySnapshot
	if dto.FacilityID != nil {
		snapshot = &order.FacilitySnapshot{
			ID:      *dto.FacilityID,
			Name:    dto.FacilityName,
			Address: dto.FacilityAddress,
			Phone:   dto.FacilityPhone,
		}
	}

	return order.RestoreOrder(
		id,
		dto.ExternalOrderID,
		dto.ShopDomain,
		dto.StoreAddress,
		order.Type(dto.OrderType),
		recipient,
		dto.Parcels,
		dto.Note,
		order.Status(dto.Status),
		courierID,
		snapshot,
	)
}
