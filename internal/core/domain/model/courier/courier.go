package courier

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// WorstEta sorts after any real "HH:MM" ETA value, so couriers without a
// recorded ETA are only picked when no candidate has one.
const WorstEta = "99:99"

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrServiceTypesAreRequired is returned when a courier handles no delivery types.
	ErrServiceTypesAreRequired = errs.NewValueIsRequiredError("service types")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery worker in the system.
// It is an aggregate root managing courier identity, availability, and the
// delivery service families the courier handles.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and at least one service type
//   - Only active couriers are considered for dispatch
//   - lastEta is a lexicographically sortable "HH:MM" string reported by the
//     courier app; an empty value means no ETA has been recorded yet
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// active reports whether the courier is currently on shift
	active bool
	// serviceTypes are the delivery families this courier handles
	serviceTypes []order.Type
	// lastEta is the latest reported ETA, empty when none recorded
	lastEta string
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// The courier starts without a recorded ETA; RestoreCourier carries one over
// from persistence.
func NewCourier(id kernel.UUID, name string, active bool, serviceTypes []order.Type) (*Courier, error) {
	c := &Courier{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setServiceTypes(serviceTypes),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including the last reported ETA. Used by repositories only.
func RestoreCourier(
	id kernel.UUID, name string, active bool, serviceTypes []order.Type, lastEta string,
) (*Courier, error) {
	c, err := NewCourier(id, name, active, serviceTypes)
	if err != nil {
		return nil, err
	}

	c.lastEta = strings.TrimSpace(lastEta)
	return c, nil
}

// Validate ensures the Courier was created via NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// IsActive reports whether the courier is currently on shift.
func (c *Courier) IsActive() bool {
	return c.active
}

// ServiceTypes returns the delivery families this courier handles.
func (c *Courier) ServiceTypes() []order.Type {
	return c.serviceTypes
}

// LastEta returns the latest reported ETA as an "HH:MM" string,
// or the empty string if no ETA has been recorded.
func (c *Courier) LastEta() string {
	return c.lastEta
}

// EtaForSort returns the last reported ETA, substituting WorstEta when none
// is recorded so that plain string comparison ranks such couriers last.
func (c *Courier) EtaForSort() string {
	if c.lastEta == "" {
		return WorstEta
	}
	return c.lastEta
}

// ReportEta records the courier's most recent ETA.
func (c *Courier) ReportEta(eta string) {
	c.lastEta = strings.TrimSpace(eta)
}

// Serves reports whether the courier handles the given delivery family.
func (c *Courier) Serves(orderType order.Type) bool {
	for _, t := range c.serviceTypes {
		if t == orderType {
			return true
		}
	}
	return false
}

// CanTake reports whether the courier is a dispatch candidate for the order:
// on shift and serving the order's delivery family.
func (c *Courier) CanTake(o *order.Order) (bool, error) {
	if err := errors.Join(c.Validate(), o.Validate()); err != nil {
		return false, err
	}

	return c.active && c.Serves(o.Type()), nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setServiceTypes(serviceTypes []order.Type) error {
	if len(serviceTypes) == 0 {
		return ErrServiceTypesAreRequired
	}
	for _, t := range serviceTypes {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	c.serviceTypes = serviceTypes
	return nil
}
