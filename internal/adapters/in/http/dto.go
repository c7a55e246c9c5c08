package http

import (
	"strconv"
	"time"

	"lastmile/internal/core/domain/model/quote"
)

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RatesRequest is the carrier-service callback payload posted by the
// commerce platform for every checkout.
type RatesRequest struct {
	Rate RatePayload `json:"rate"`
}

// RatePayload carries the checkout context of a rate callback.
type RatePayload struct {
	Shop        string      `json:"shop"`
	Destination Destination `json:"destination"`
}

// Destination is the shopper's delivery address as the platform sends it.
type Destination struct {
	Address1   string `json:"address1"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// RatesResponse wraps the quoted offers in the carrier-service response shape.
type RatesResponse struct {
	Rates []Rate `json:"rates"`
}

// Rate is one delivery offer in the carrier-service wire format. The total
// price is the minor-unit amount rendered as a string, per the callback
// contract.
type Rate struct {
	ServiceName     string `json:"service_name"`
	ServiceCode     string `json:"service_code"`
	TotalPrice      string `json:"total_price"`
	Currency        string `json:"currency"`
	Description     string `json:"description,omitempty"`
	MinDeliveryDate string `json:"min_delivery_date,omitempty"`
	MaxDeliveryDate string `json:"max_delivery_date,omitempty"`
}

// rateFromOffer maps a domain offer onto the wire format.
func rateFromOffer(offer quote.Offer) Rate {
	rate := Rate{
		ServiceName: offer.ServiceName,
		ServiceCode: offer.ServiceCode,
		TotalPrice:  strconv.FormatInt(offer.Price.MinorUnits(), 10),
		Currency:    offer.Price.Currency(),
		Description: offer.Description,
	}

	if offer.Window != nil {
		rate.MinDeliveryDate = offer.Window.Start().Format(time.RFC3339)
		rate.MaxDeliveryDate = offer.Window.End().Format(time.RFC3339)
	}

	return rate
}

// OrderWebhookRequest is the parsed order-created event. Signature
// verification happens upstream; this adapter trusts the payload shape.
type OrderWebhookRequest struct {
	ExternalOrderID string           `json:"external_order_id"`
	ShopDomain      string           `json:"shop_domain"`
	ServiceCode     string           `json:"service_code"`
	Recipient       WebhookRecipient `json:"recipient"`
	Parcels         int              `json:"parcels"`
	Note            string           `json:"note"`
}

// WebhookRecipient is the delivery address block of an order event.
type WebhookRecipient struct {
	Name     string `json:"name"`
	Street   string `json:"street"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// OrderWebhookResponse acknowledges an order event. Result is "created" or
// "duplicate"; both are success outcomes for the at-least-once delivery.
type OrderWebhookResponse struct {
	Result  string `json:"result"`
	OrderID string `json:"order_id"`
}

// UnassignedOrder is one row of the operations backlog view.
type UnassignedOrder struct {
	ID              string    `json:"id"`
	ExternalOrderID string    `json:"external_order_id"`
	ShopDomain      string    `json:"shop_domain"`
	StoreAddress    string    `json:"store_address,omitempty"`
	Street          string    `json:"street"`
	Postcode        string    `json:"postcode"`
	City            string    `json:"city"`
	Parcels         int       `json:"parcels"`
	CreatedAt       time.Time `json:"created_at"`
}
