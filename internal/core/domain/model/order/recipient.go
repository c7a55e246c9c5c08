package order

import (
	"errors"
	"strings"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when using an improperly initialized Recipient.
var ErrRecipientIsNotConstructed = errs.NewValueIsRequiredError(
	"recipient must be created via NewRecipient constructor")

// Recipient holds the shopper-facing delivery address and contact details.
// Street, postcode and city are mandatory; name and phone may be absent on
// platform events and are carried through as-is.
type Recipient struct { //nolint:recvcheck //using for validation
	name     string
	street   string
	postcode string
	city     string
	phone    string

	guard guard.ConstructorGuard
}

// NewRecipient creates a Recipient with the mandatory address parts validated.
// The postcode is stored space-stripped so it compares consistently with the
// served-area allowlist.
func NewRecipient(name, street, postcode, city, phone string) (Recipient, error) {
	recipient := Recipient{
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recipient.setStreet(street),
		recipient.setPostcode(postcode),
		recipient.setCity(city),
	); err != nil {
		return Recipient{}, err
	}

	return recipient, nil
}

// Validate checks that the Recipient was created via NewRecipient.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's display name; may be empty.
func (r Recipient) Name() string { return r.name }

// Street returns the street address line.
func (r Recipient) Street() string { return r.street }

// Postcode returns the space-stripped postal code.
func (r Recipient) Postcode() string { return r.postcode }

// City returns the city name.
func (r Recipient) City() string { return r.city }

// Phone returns the contact phone number; may be empty.
func (r Recipient) Phone() string { return r.phone }

func (r *Recipient) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	r.street = street
	return nil
}

func (r *Recipient) setPostcode(postcode string) error {
	postcode = strings.ReplaceAll(strings.TrimSpace(postcode), " ", "")
	if postcode == "" {
		return errs.NewValueIsRequiredError("postcode")
	}
	r.postcode = postcode
	return nil
}

func (r *Recipient) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	r.city = city
	return nil
}
