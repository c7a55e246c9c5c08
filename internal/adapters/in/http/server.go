// Package http exposes the delivery add-on's inbound HTTP surface: the
// carrier-service rate callback, the order-created webhook, and the
// operations backlog view.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
)

// shopDomainHeader carries the merchant shop when the platform omits it from
// the callback body.
const shopDomainHeader = "X-Shop-Domain"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	ingestOrderHandler         commands.IngestOrderCommandHandler
	getDeliveryRatesHandler    queries.GetDeliveryRatesQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	ingestOrderHandler commands.IngestOrderCommandHandler,
	getDeliveryRatesHandler queries.GetDeliveryRatesQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
) *Server {
	return &Server{
		ingestOrderHandler:         ingestOrderHandler,
		getDeliveryRatesHandler:    getDeliveryRatesHandler,
		getUnassignedOrdersHandler: getUnassignedOrdersHandler,
	}
}

// RegisterRoutes wires the server's handlers onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/shipping-rates", s.GetShippingRates)
	e.POST("/api/v1/webhooks/orders", s.IngestOrder)
	e.GET("/api/v1/orders/unassigned", s.GetUnassignedOrders)
	e.GET("/health", s.Health)
}

// GetShippingRates handles POST /api/v1/shipping-rates, the carrier-service
// rate callback. A malformed destination is the caller's error; an empty
// rates list is a valid answer meaning nothing ships there.
func (s *Server) GetShippingRates(ctx echo.Context) error {
	var request RatesRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shopDomain := request.Rate.Shop
	if shopDomain == "" {
		shopDomain = ctx.Request().Header.Get(shopDomainHeader)
	}

	query, err := queries.NewGetDeliveryRatesQuery(
		shopDomain,
		request.Rate.Destination.Address1,
		request.Rate.Destination.PostalCode,
		request.Rate.Destination.City,
		request.Rate.Destination.Country,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid destination: " + err.Error(),
		})
	}

	offers, err := s.getDeliveryRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute delivery rates",
		})
	}

	response := RatesResponse{Rates: make([]Rate, 0, len(offers))}
	for _, offer := range offers {
		response.Rates = append(response.Rates, rateFromOffer(offer))
	}

	return ctx.JSON(http.StatusOK, response)
}

// IngestOrder handles POST /api/v1/webhooks/orders, the order-created event.
// Replays of an already ingested order acknowledge with result "duplicate";
// the platform retries on anything but a 2xx.
func (s *Server) IngestOrder(ctx echo.Context) error {
	var request OrderWebhookRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shopDomain := request.ShopDomain
	if shopDomain == "" {
		shopDomain = ctx.Request().Header.Get(shopDomainHeader)
	}

	cmd, err := commands.NewIngestOrderCommand(commands.IngestOrderParams{
		ExternalOrderID: request.ExternalOrderID,
		ShopDomain:      shopDomain,
		ServiceCode:     request.ServiceCode,
		RecipientName:   request.Recipient.Name,
		Street:          request.Recipient.Street,
		Postcode:        request.Recipient.Postcode,
		City:            request.Recipient.City,
		Phone:           request.Recipient.Phone,
		Parcels:         request.Parcels,
		Note:            request.Note,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.ingestOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to ingest order",
		})
	}

	return ctx.JSON(http.StatusOK, OrderWebhookResponse{
		Result:  result.Outcome.String(),
		OrderID: result.OrderID.String(),
	})
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned, the operations
// view of the home-delivery backlog.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve unassigned orders",
		})
	}

	response := make([]UnassignedOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, UnassignedOrder{
			ID:              o.ID.String(),
			ExternalOrderID: o.ExternalOrderID,
			ShopDomain:      o.ShopDomain,
			StoreAddress:    o.StoreAddress,
			Street:          o.Street,
			Postcode:        o.Postcode,
			City:            o.City,
			Parcels:         o.Parcels,
			CreatedAt:       o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
