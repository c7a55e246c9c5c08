package commands

import (
	"errors"
	"strings"

	"lastmile/internal/pkg/guard"
)

var (
	ErrIngestOrderCommandIsNotConstructed = errors.New(
		"IngestOrderCommand must be created via NewIngestOrderCommand constructor",
	)
	ErrExternalOrderIDIsRequired = errors.New("external order id is required")
	ErrShopDomainIsRequired      = errors.New("shop domain is required")
	ErrStreetIsRequired          = errors.New("street is required")
	ErrPostcodeIsRequired        = errors.New("postcode is required")
	ErrCityIsRequired            = errors.New("city is required")
)

// IngestOrderParams carries the parsed order event payload into the command
// constructor. The upstream webhook gate has already authenticated the
// event; the command only checks structural validity.
type IngestOrderParams struct {
	ExternalOrderID string
	ShopDomain      string

	// ServiceCode is the shipping service code the shopper selected at
	// checkout; empty or unrecognized codes fall back to home delivery.
	ServiceCode string

	RecipientName  string
	Street         string
	Postcode       string
	City           string
	Phone          string

	// Parcels is the number of packages; values below one are clamped to one.
	Parcels int

	Note string
}

// IngestOrderCommand represents an order event received from the commerce
// platform. Ingestion is idempotent on the external order id: replayed
// events produce a duplicate result, never a second order.
//
// Example:
//
//	cmd, err := NewIngestOrderCommand(IngestOrderParams{
//	    ExternalOrderID: "1001",
//	    ShopDomain:      "shop.example.com",
//	    ServiceCode:     "locker_42",
//	    Street:          "Vasagatan 12",
//	    Postcode:        "41124",
//	    City:            "Gothenburg",
//	    Parcels:         2,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order event: %w", err)
//	}
type IngestOrderCommand struct { //nolint:recvcheck //using for validation
	params IngestOrderParams

	guard guard.ConstructorGuard
}

// NewIngestOrderCommand creates a command to ingest an order event.
// Validates that the dedup key, shop domain, and delivery address are present.
func NewIngestOrderCommand(params IngestOrderParams) (IngestOrderCommand, error) {
	command := IngestOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParams(params); err != nil {
		return IngestOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIngestOrderCommandIsNotConstructed if validation fails.
func (c IngestOrderCommand) Validate() error {
	return c.guard.Validate(ErrIngestOrderCommandIsNotConstructed)
}

// ExternalOrderID returns the commerce platform's order id (the dedup key).
func (c IngestOrderCommand) ExternalOrderID() string {
	return c.params.ExternalOrderID
}

// ShopDomain returns the merchant shop the event originates from.
func (c IngestOrderCommand) ShopDomain() string {
	return c.params.ShopDomain
}

// ServiceCode returns the selected shipping service code; may be empty.
func (c IngestOrderCommand) ServiceCode() string {
	return c.params.ServiceCode
}

// RecipientName returns the recipient's name; may be empty.
func (c IngestOrderCommand) RecipientName() string {
	return c.params.RecipientName
}

// Street returns the delivery street address.
func (c IngestOrderCommand) Street() string {
	return c.params.Street
}

// Postcode returns the delivery postcode.
func (c IngestOrderCommand) Postcode() string {
	return c.params.Postcode
}

// City returns the delivery city.
func (c IngestOrderCommand) City() string {
	return c.params.City
}

// Phone returns the recipient's phone number; may be empty.
func (c IngestOrderCommand) Phone() string {
	return c.params.Phone
}

// Parcels returns the number of packages, at least one.
func (c IngestOrderCommand) Parcels() int {
	return c.params.Parcels
}

// Note returns the free-form order note; may be empty.
func (c IngestOrderCommand) Note() string {
	return c.params.Note
}

func (c *IngestOrderCommand) setParams(params IngestOrderParams) error {
	params.ExternalOrderID = strings.TrimSpace(params.ExternalOrderID)
	params.ShopDomain = strings.TrimSpace(params.ShopDomain)
	params.ServiceCode = strings.TrimSpace(params.ServiceCode)
	if params.Parcels < 1 {
		params.Parcels = 1
	}

	if err := errors.Join(
		requireField(params.ExternalOrderID, ErrExternalOrderIDIsRequired),
		requireField(params.ShopDomain, ErrShopDomainIsRequired),
		requireField(params.Street, ErrStreetIsRequired),
		requireField(params.Postcode, ErrPostcodeIsRequired),
		requireField(params.City, ErrCityIsRequired),
	); err != nil {
		return err
	}

	c.params = params
	return nil
}

func requireField(value string, missing error) error {
	if strings.TrimSpace(value) == "" {
		return missing
	}
	return nil
}
