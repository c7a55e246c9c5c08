// Package queries contains read operations in the CQRS architecture.
// Rate quotation is the hot read path: it composes repository state with the
// pure quoting engine. Operational read models go straight to the database
// with raw SQL.
package queries

import (
	"errors"
	"strings"

	"lastmile/internal/pkg/guard"
)

var (
	ErrGetDeliveryRatesQueryIsNotConstructed = errors.New(
		"GetDeliveryRatesQuery must be created via NewGetDeliveryRatesQuery constructor",
	)
	ErrShopDomainIsRequired = errors.New("shop domain is required")
	ErrStreetIsRequired     = errors.New("street is required")
	ErrPostcodeIsRequired   = errors.New("postcode is required")
)

// GetDeliveryRatesQuery asks for the delivery offers available for a
// checkout destination. Issued by the commerce platform's rate callback for
// every checkout in the merchant's shop.
//
// Example:
//
//	query, err := NewGetDeliveryRatesQuery(
//	    "shop.example.com", "Vasagatan 12", "41124", "Gothenburg", "SE",
//	)
//	if err != nil {
//	    return err // malformed destination, reject the callback
//	}
//
//	offers, err := handler.Handle(ctx, query)
type GetDeliveryRatesQuery struct { //nolint:recvcheck //using for validation
	shopDomain string
	street     string
	postcode   string
	city       string
	country    string

	guard guard.ConstructorGuard
}

// NewGetDeliveryRatesQuery creates a rate query for a checkout destination.
// Shop domain, street, and postcode are required; a missing one means the
// callback payload is malformed and the whole request is rejected.
func NewGetDeliveryRatesQuery(
	shopDomain, street, postcode, city, country string,
) (GetDeliveryRatesQuery, error) {
	query := GetDeliveryRatesQuery{
		city:    strings.TrimSpace(city),
		country: strings.TrimSpace(country),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setShopDomain(shopDomain),
		query.setStreet(street),
		query.setPostcode(postcode),
	); err != nil {
		return GetDeliveryRatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryRatesQueryIsNotConstructed if validation fails.
func (q GetDeliveryRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRatesQueryIsNotConstructed)
}

// ShopDomain returns the merchant shop the checkout belongs to.
func (q GetDeliveryRatesQuery) ShopDomain() string {
	return q.shopDomain
}

// Street returns the destination street address.
func (q GetDeliveryRatesQuery) Street() string {
	return q.street
}

// Postcode returns the destination postcode.
func (q GetDeliveryRatesQuery) Postcode() string {
	return q.postcode
}

// City returns the destination city; may be empty.
func (q GetDeliveryRatesQuery) City() string {
	return q.city
}

// Country returns the destination country code; may be empty.
func (q GetDeliveryRatesQuery) Country() string {
	return q.country
}

// GeocodingAddress returns the destination as a single line for the
// geocoding service.
func (q GetDeliveryRatesQuery) GeocodingAddress() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{q.street, q.postcode, q.city, q.country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func (q *GetDeliveryRatesQuery) setShopDomain(shopDomain string) error {
	shopDomain = strings.ToLower(strings.TrimSpace(shopDomain))
	if shopDomain == "" {
		return ErrShopDomainIsRequired
	}
	q.shopDomain = shopDomain
	return nil
}

func (q *GetDeliveryRatesQuery) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return ErrStreetIsRequired
	}
	q.street = street
	return nil
}

func (q *GetDeliveryRatesQuery) setPostcode(postcode string) error {
	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		return ErrPostcodeIsRequired
	}
	q.postcode = postcode
	return nil
}
