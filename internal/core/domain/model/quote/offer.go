// Package quote provides the DeliveryOffer value type returned by the rate
// quotation engine. Offers are assembled fresh for every quote request and are
// never persisted.
package quote

import (
	"lastmile/internal/core/domain/model/kernel"
)

// Offer is a single priced delivery option presented to the shopper at
// checkout. ServiceCode is the stable identifier that comes back on the order
// event when the shopper selects the offer; for locker offers it encodes the
// facility id.
type Offer struct {
	// ServiceName is the display string shown in the checkout.
	ServiceName string

	// ServiceCode is the stable identifier of the offer.
	ServiceCode string

	// Price is the total price in minor currency units.
	Price kernel.Money

	// Description is a human-readable delivery promise.
	Description string

	// Window is the promised delivery interval; nil when no window is promised.
	Window *kernel.TimeWindow
}
