package commands

import (
	"context"
	"errors"
	"log/slog"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/merchant"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// IngestOutcome tells callers whether the event created a new order or hit
// the dedup gate.
type IngestOutcome int

const (
	// OutcomeUnknown is the zero value, never returned on success.
	OutcomeUnknown IngestOutcome = iota

	// OutcomeCreated means a new order was stored.
	OutcomeCreated

	// OutcomeDuplicate means an order with the same external order id
	// already existed; no side effects were produced.
	OutcomeDuplicate
)

// String returns the wire representation of the outcome.
func (o IngestOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeUnknown:
	}
	return "unknown"
}

// IngestOrderResult reports what ingestion did with the event.
type IngestOrderResult struct {
	Outcome IngestOutcome

	// OrderID is the local order id: the new order's id for created, the
	// stored order's id for duplicate.
	OrderID kernel.UUID

	// CourierAssigned reports whether the follow-up courier assignment
	// succeeded. Always false for duplicates and for order types outside
	// courier dispatch.
	CourierAssigned bool

	// AssignmentError carries a failed assignment for the caller to
	// surface. The order itself is created regardless; the retry job picks
	// unassigned orders up later.
	AssignmentError error
}

// AssignCourierHandler is the slice of AssignCourierCommandHandler the
// ingestion flow depends on.
type AssignCourierHandler interface {
	Handle(ctx context.Context, command AssignCourierCommand) error
}

// IngestOrderCommandHandler handles order events from the commerce platform.
//
// The flow runs in two transactions. The first one holds the dedup gate and
// the order insert: a lookup by external order id, the merchant config read
// for the store address snapshot, the facility snapshot for locker orders,
// and the insert itself. The second transaction is courier assignment for
// home-delivery orders; its failure never rolls the created order back.
//
// The dedup gate has two layers: the lookup catches replays, and the unique
// index on the external order id catches concurrent replays racing past the
// lookup. Both paths report a duplicate outcome.
type IngestOrderCommandHandler struct {
	uowFactory    IngestUoWFactory
	assignHandler AssignCourierHandler
	logger        *slog.Logger
}

// NewIngestOrderCommandHandler creates a handler for order event ingestion.
func NewIngestOrderCommandHandler(
	uowFactory IngestUoWFactory,
	assignHandler AssignCourierHandler,
	logger *slog.Logger,
) IngestOrderCommandHandler {
	return IngestOrderCommandHandler{
		uowFactory:    uowFactory,
		assignHandler: assignHandler,
		logger:        logger,
	}
}

// Handle processes the order event.
// Returns a duplicate result for replayed events and a created result with
// the new order id otherwise. Assignment failures are logged and carried in
// the result, not returned as errors.
func (h IngestOrderCommandHandler) Handle(
	ctx context.Context, command IngestOrderCommand,
) (IngestOrderResult, error) {
	if err := command.Validate(); err != nil {
		return IngestOrderResult{}, err
	}

	aggregate, result, err := h.createOrder(ctx, command)
	if err != nil || result.Outcome == OutcomeDuplicate {
		return result, err
	}

	if aggregate.Type().NeedsCourier() {
		h.assignCourier(ctx, aggregate, &result)
	}

	return result, nil
}

func (h IngestOrderCommandHandler) createOrder(
	ctx context.Context, command IngestOrderCommand,
) (*order.Order, IngestOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, IngestOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	existing, err := ordersRepo.GetByExternalID(ctx, command.ExternalOrderID())
	if err == nil {
		return nil, IngestOrderResult{Outcome: OutcomeDuplicate, OrderID: existing.ID()}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, IngestOrderResult{}, err
	}

	config, err := h.merchantConfig(ctx, uow.MerchantConfigRepository(), command.ShopDomain())
	if err != nil {
		return nil, IngestOrderResult{}, err
	}

	recipient, err := order.NewRecipient(
		command.RecipientName(), command.Street(), command.Postcode(), command.City(), command.Phone(),
	)
	if err != nil {
		return nil, IngestOrderResult{}, err
	}

	orderType, facilityID := order.TypeFromServiceCode(command.ServiceCode())

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		command.ExternalOrderID(),
		command.ShopDomain(),
		config.StoreAddress(),
		orderType,
		recipient,
		command.Parcels(),
		command.Note(),
	)
	if err != nil {
		return nil, IngestOrderResult{}, err
	}

	if orderType == order.Locker && facilityID > 0 {
		if err = h.attachFacility(ctx, uow.FacilityRepository(), aggregate, facilityID); err != nil {
			return nil, IngestOrderResult{}, err
		}
	}

	if err = ordersRepo.Add(ctx, aggregate); err != nil {
		if errors.Is(err, ports.ErrOrderAlreadyExists) {
			// Lost a concurrent replay race; the other writer's row stands.
			// The aborted transaction cannot be queried, so the stored id
			// comes from a fresh lookup.
			result, dupErr := h.duplicateResult(ctx, command.ExternalOrderID())
			return nil, result, dupErr
		}
		return nil, IngestOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, IngestOrderResult{}, err
	}

	return aggregate, IngestOrderResult{Outcome: OutcomeCreated, OrderID: aggregate.ID()}, nil
}

// duplicateResult reads the stored order for a replayed external order id
// in a fresh transaction and reports the duplicate outcome with its id.
func (h IngestOrderCommandHandler) duplicateResult(
	ctx context.Context, externalOrderID string,
) (IngestOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return IngestOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.OrderRepository().GetByExternalID(ctx, externalOrderID)
	if err != nil {
		return IngestOrderResult{}, err
	}

	return IngestOrderResult{Outcome: OutcomeDuplicate, OrderID: existing.ID()}, nil
}

// merchantConfig loads the merchant's configuration, falling back to the
// defaults for merchants that never saved settings.
func (h IngestOrderCommandHandler) merchantConfig(
	ctx context.Context, repo ports.MerchantConfigRepository, shopDomain string,
) (*merchant.Config, error) {
	config, err := repo.Get(ctx, shopDomain)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return merchant.DefaultConfig(shopDomain)
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

// attachFacility snapshots the selected drop-off facility onto the order.
// An unresolvable facility id is logged and skipped: the order is still
// created and reconciled manually.
func (h IngestOrderCommandHandler) attachFacility(
	ctx context.Context, repo ports.FacilityRepository, aggregate *order.Order, facilityID int64,
) error {
	selected, err := repo.Get(ctx, facilityID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "selected facility not found, order created without facility",
			"facilityId", facilityID,
			"externalOrderId", aggregate.ExternalOrderID(),
		)
		return nil
	}
	if err != nil {
		return err
	}

	return aggregate.AttachFacility(order.FacilitySnapshot{
		ID:      selected.ID(),
		Name:    selected.Name(),
		Address: selected.Address(),
		Phone:   selected.Phone(),
	})
}

// assignCourier runs courier assignment in its own transaction. Any failure
// is logged and surfaced through the result; order creation stands.
func (h IngestOrderCommandHandler) assignCourier(
	ctx context.Context, aggregate *order.Order, result *IngestOrderResult,
) {
	assignCommand, err := NewAssignCourierCommand(aggregate.ID())
	if err == nil {
		err = h.assignHandler.Handle(ctx, assignCommand)
	}

	if err != nil {
		h.logger.WarnContext(ctx, "courier assignment failed, order stays pending",
			"orderId", aggregate.ID().String(),
			"externalOrderId", aggregate.ExternalOrderID(),
			"error", err,
		)
		result.AssignmentError = err
		return
	}

	result.CourierAssigned = true
}
