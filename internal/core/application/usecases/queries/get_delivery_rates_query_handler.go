package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lastmile/internal/core/domain/model/facility"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/merchant"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/model/quote"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// geocodeTimeout bounds the external geocoding call. When it expires the
// quote falls back to the generic locker offer instead of failing.
const geocodeTimeout = 3 * time.Second

// Unit of Work interfaces for the rate quotation read path.
type (
	// RatesUoW provides the repository reads the quote needs in one
	// transaction: merchant config, courier directory, facility directory.
	RatesUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		CourierRepository() ports.CourierRepository
		FacilityRepository() ports.FacilityRepository
		MerchantConfigRepository() ports.MerchantConfigRepository
	}

	// RatesUoWFactory creates new rate quotation unit of work instances.
	RatesUoWFactory interface {
		Create() RatesUoW
	}
)

// GetDeliveryRatesQueryHandler assembles the delivery offers for a checkout.
//
// The handler gathers state (merchant config, courier availability, the
// facility directory, the geocoded destination) and hands it to the pure
// quoting engine. Geocoding is the only external call; it runs under a
// short deadline and its failure downgrades the locker offers to the
// generic fallback rather than failing the quote.
type GetDeliveryRatesQueryHandler struct {
	uowFactory RatesUoWFactory
	geocoder   ports.Geocoder
	quoter     services.RateQuoter
	logger     *slog.Logger
	now        func() time.Time
}

// NewGetDeliveryRatesQueryHandler creates a handler for rate quotation.
func NewGetDeliveryRatesQueryHandler(
	uowFactory RatesUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) GetDeliveryRatesQueryHandler {
	return GetDeliveryRatesQueryHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		quoter:     services.NewRateQuoter(),
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler quoting at instants from the given
// clock. Used by tests to pin the business-hours window.
func (h GetDeliveryRatesQueryHandler) WithClock(now func() time.Time) GetDeliveryRatesQueryHandler {
	h.now = now
	return h
}

// Handle computes the delivery offers for the destination.
// An empty offer list is a valid response meaning no services are available
// for this destination.
func (h GetDeliveryRatesQueryHandler) Handle(
	ctx context.Context, query GetDeliveryRatesQuery,
) ([]quote.Offer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	config, err := h.merchantConfig(ctx, uow, query.ShopDomain())
	if err != nil {
		return nil, err
	}

	hasHomeCourier, err := h.hasHomeCourier(ctx, uow)
	if err != nil {
		return nil, err
	}

	var (
		facilities  []*facility.Facility
		destination *kernel.Coordinates
	)

	needsLockers := config.LockerEnabled() &&
		config.FacilityCount() > 0 &&
		config.ServesPostcode(query.Postcode())
	if needsLockers {
		facilities, err = uow.FacilityRepository().GetAll(ctx)
		if err != nil {
			return nil, err
		}

		destination = h.geocode(ctx, query.GeocodingAddress())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.quoter.Quote(services.QuoteRequest{
		Now:            h.now(),
		Config:         config,
		Postcode:       query.Postcode(),
		HasHomeCourier: hasHomeCourier,
		Destination:    destination,
		Facilities:     facilities,
	})
}

func (h GetDeliveryRatesQueryHandler) merchantConfig(
	ctx context.Context, uow RatesUoW, shopDomain string,
) (*merchant.Config, error) {
	config, err := uow.MerchantConfigRepository().Get(ctx, shopDomain)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return merchant.DefaultConfig(shopDomain)
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (h GetDeliveryRatesQueryHandler) hasHomeCourier(
	ctx context.Context, uow RatesUoW,
) (bool, error) {
	couriers, err := uow.CourierRepository().GetAllActive(ctx)
	if err != nil {
		return false, err
	}

	for _, c := range couriers {
		if c.Serves(order.HomeDelivery) {
			return true, nil
		}
	}

	return false, nil
}

// geocode resolves the destination under a deadline. Any failure is logged
// and reported as a missing destination, which the quoting engine turns
// into the generic locker fallback.
func (h GetDeliveryRatesQueryHandler) geocode(ctx context.Context, address string) *kernel.Coordinates {
	geocodeCtx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	coordinates, err := h.geocoder.Geocode(geocodeCtx, address)
	if err != nil {
		h.logger.WarnContext(ctx, "geocoding failed, falling back to generic locker offer",
			"address", address,
			"error", err,
		)
		return nil
	}

	return &coordinates
}
