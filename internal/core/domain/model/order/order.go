package order

import (
	"errors"
	"fmt"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order received from the commerce platform.
// It is the aggregate root managing the order lifecycle from ingestion through
// courier or facility assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty external order id
//   - The external order id is the natural dedup key: at most one Order exists per id
//   - Parcels count is at least one
//   - Status transitions follow the Pending -> Assigned -> Completed workflow
//   - A courier reference is consistent with the status (see Status.ValidateCanHaveCourier)
type Order struct {
	// id is the local unique identifier for the order
	id kernel.UUID

	// externalOrderID is the commerce platform's order id, the dedup key
	externalOrderID string

	// shopDomain identifies the merchant the order originates from
	shopDomain string

	// storeAddress is a snapshot of the merchant's pickup address,
	// used to cluster pickups onto one courier route
	storeAddress string

	// orderType is the delivery service family selected at checkout
	orderType Type

	// recipient is the delivery address and contact details
	recipient Recipient

	// parcels is the number of packages in the shipment
	parcels int

	// note is free-form text carried from the platform order
	note string

	// status represents the current state in the order lifecycle
	status Status

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// facility is the drop-off point snapshot (nil unless a locker facility matched)
	facility *FacilitySnapshot

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a fresh order; reconstruction from persistence goes
// through RestoreOrder.
func NewOrder(
	id kernel.UUID,
	externalOrderID string,
	shopDomain string,
	storeAddress string,
	orderType Type,
	recipient Recipient,
	parcels int,
	note string,
) (*Order, error) {
	o := &Order{
		storeAddress:  strings.TrimSpace(storeAddress),
		note:          note,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalOrderID(externalOrderID),
		o.setShopDomain(shopDomain),
		o.setType(orderType),
		o.setRecipient(recipient),
		o.setParcels(parcels),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full persisted state, including status,
// courier reference, and facility snapshot, and revalidates their
// consistency. Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	externalOrderID string,
	shopDomain string,
	storeAddress string,
	orderType Type,
	recipient Recipient,
	parcels int,
	note string,
	status Status,
	courierID *kernel.UUID,
	facility *FacilitySnapshot,
) (*Order, error) {
	o, err := NewOrder(id, externalOrderID, shopDomain, storeAddress, orderType, recipient, parcels, note)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.courierID = courierID
	o.facility = facility
	return o, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their local identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's local unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ExternalOrderID returns the commerce platform's order id (the dedup key).
func (o *Order) ExternalOrderID() string {
	return o.externalOrderID
}

// ShopDomain returns the domain of the merchant shop the order came from.
func (o *Order) ShopDomain() string {
	return o.shopDomain
}

// StoreAddress returns the snapshot of the merchant's pickup address.
// May be empty when the merchant has no configured store address.
func (o *Order) StoreAddress() string {
	return o.storeAddress
}

// Type returns the delivery service family of the order.
func (o *Order) Type() Type {
	return o.orderType
}

// Recipient returns the delivery address and contact details.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Parcels returns the number of packages in the shipment.
func (o *Order) Parcels() int {
	return o.parcels
}

// Note returns the free-form text carried from the platform order.
func (o *Order) Note() string {
	return o.note
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Facility returns the drop-off point snapshot, or nil when no facility matched.
func (o *Order) Facility() *FacilitySnapshot {
	return o.facility
}

// ValidateAssign checks whether the order may currently be assigned a courier.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// AssignCourier assigns the order to a courier and transitions the status to
// Assigned. Reassignment from Assigned to Assigned is allowed; completed
// orders cannot be assigned.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// AttachFacility snapshots a drop-off facility onto a locker order.
// Only locker orders may carry a facility reference.
func (o *Order) AttachFacility(snapshot FacilitySnapshot) error {
	if o.orderType != Locker {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
			fmt.Errorf("%s order cannot reference a facility", o.orderType))
	}
	if snapshot.ID <= 0 {
		return errs.NewValueIsRequiredError("facility id")
	}

	o.facility = &snapshot
	return nil
}

// Complete marks the order as delivered. Valid only from Assigned.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalOrderID(externalOrderID string) error {
	externalOrderID = strings.TrimSpace(externalOrderID)
	if externalOrderID == "" {
		return errs.NewValueIsRequiredError("external order id")
	}
	o.externalOrderID = externalOrderID
	return nil
}

func (o *Order) setShopDomain(shopDomain string) error {
	shopDomain = strings.ToLower(strings.TrimSpace(shopDomain))
	if shopDomain == "" {
		return errs.NewValueIsRequiredError("shop domain")
	}
	o.shopDomain = shopDomain
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setParcels(parcels int) error {
	if parcels <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("parcels is invalid",
			fmt.Errorf("%d is not greater than 0", parcels))
	}
	o.parcels = parcels
	return nil
}
