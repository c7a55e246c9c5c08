package services

import (
	"fmt"
	"math"
	"time"

	"lastmile/internal/core/domain/model/facility"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/merchant"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/model/quote"
	"lastmile/internal/pkg/errs"
)

// lockerWindowLength is the promised span for a ranked locker offer.
const lockerWindowLength = 4 * time.Hour

// genericLockerWindowLength is the promised span for the generic fallback
// locker offer emitted when no facility could be ranked.
const genericLockerWindowLength = 24 * time.Hour

// QuoteRequest carries everything the quoting engine needs, gathered by the
// caller up front: the quoting instant, the merchant's configuration, the
// shopper's destination, and the current courier/facility state.
type QuoteRequest struct {
	// Now is the instant the quote is computed for.
	Now time.Time

	// Config is the merchant's delivery configuration.
	Config *merchant.Config

	// Postcode is the destination postcode used for service-area gating.
	Postcode string

	// HasHomeCourier reports whether an active courier currently serves
	// home delivery. Without one the express offer is omitted.
	HasHomeCourier bool

	// Destination is the geocoded destination; nil when geocoding failed
	// or was skipped, which triggers the generic locker fallback.
	Destination *kernel.Coordinates

	// Facilities is the drop-off facility directory in its natural order.
	Facilities []*facility.Facility
}

// RateQuoter is a domain service that assembles the list of priced delivery
// offers for a checkout destination.
//
// Business rules:
//   - A destination outside the merchant's served postcodes yields an empty
//     offer list, not an error
//   - The express offer requires both the merchant flag and an active
//     home-delivery courier
//   - Locker offers require the merchant flag and facilityCount > 0; ranked
//     offers need a geocoded destination, otherwise a single generic
//     nearest-locker offer is emitted
type RateQuoter struct {
	ranker FacilityRanker
}

// NewRateQuoter creates a new RateQuoter instance.
func NewRateQuoter() RateQuoter {
	return RateQuoter{ranker: NewFacilityRanker()}
}

// Quote assembles the delivery offers for the request. The returned slice
// may be empty; that is a valid quote meaning no services are available for
// this destination.
func (q RateQuoter) Quote(req QuoteRequest) ([]quote.Offer, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}
	if req.Now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	if !req.Config.ServesPostcode(req.Postcode) {
		return nil, nil
	}

	var offers []quote.Offer

	if req.Config.ExpressEnabled() && req.HasHomeCourier {
		offer, err := q.expressOffer(req)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	if req.Config.EveningEnabled() {
		offers = append(offers, q.eveningOffer(req.Config))
	}

	if req.Config.LockerEnabled() && req.Config.FacilityCount() > 0 {
		lockerOffers, err := q.lockerOffers(req)
		if err != nil {
			return nil, err
		}
		offers = append(offers, lockerOffers...)
	}

	return offers, nil
}

func (q RateQuoter) expressOffer(req QuoteRequest) (quote.Offer, error) {
	window, err := ComputeExpressWindow(req.Now)
	if err != nil {
		return quote.Offer{}, err
	}

	return quote.Offer{
		ServiceName: "Express home delivery",
		ServiceCode: order.ServiceCodeExpressHome,
		Price:       req.Config.ExpressPrice(),
		Description: window.Description,
		Window:      &window.Window,
	}, nil
}

func (q RateQuoter) eveningOffer(config *merchant.Config) quote.Offer {
	description := "Delivered the same evening"
	if cutoff := config.EveningCutoff(); cutoff != "" {
		description = fmt.Sprintf("Delivered the same evening for orders placed before %s", cutoff)
	}

	return quote.Offer{
		ServiceName: "Evening home delivery",
		ServiceCode: order.ServiceCodeEveningHome,
		Price:       config.EveningPrice(),
		Description: description,
	}
}

func (q RateQuoter) lockerOffers(req QuoteRequest) ([]quote.Offer, error) {
	if req.Destination == nil || len(req.Facilities) == 0 {
		offer, err := q.genericLockerOffer(req)
		if err != nil {
			return nil, err
		}
		return []quote.Offer{offer}, nil
	}

	ranked, err := q.ranker.Rank(*req.Destination, req.Facilities, req.Config.FacilityCount())
	if err != nil {
		return nil, err
	}

	offers := make([]quote.Offer, 0, len(ranked))
	for i, candidate := range ranked {
		window, err := kernel.NewTimeWindow(req.Now, req.Now.Add(lockerWindowLength))
		if err != nil {
			return nil, err
		}

		offers = append(offers, quote.Offer{
			ServiceName: fmt.Sprintf(
				"Locker %d: %s (%d m)",
				i+1, candidate.Facility.Name(), int64(math.Round(candidate.DistanceMeters)),
			),
			ServiceCode: order.LockerServiceCode(candidate.Facility.ID()),
			Price:       req.Config.LockerPrice(),
			Description: candidate.Facility.Address(),
			Window:      &window,
		})
	}

	return offers, nil
}

func (q RateQuoter) genericLockerOffer(req QuoteRequest) (quote.Offer, error) {
	window, err := kernel.NewTimeWindow(req.Now, req.Now.Add(genericLockerWindowLength))
	if err != nil {
		return quote.Offer{}, err
	}

	description := "Delivered to your nearest parcel locker within 24 hours"
	if cutoff := req.Config.LockerCutoff(); cutoff != "" {
		description = fmt.Sprintf(
			"Delivered to your nearest parcel locker within 24 hours for orders placed before %s", cutoff,
		)
	}

	return quote.Offer{
		ServiceName: "Nearest parcel locker",
		ServiceCode: order.ServiceCodeLockerGeneric,
		Price:       req.Config.LockerPrice(),
		Description: description,
		Window:      &window,
	}, nil
}
