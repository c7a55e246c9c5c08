package commands

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/services"
	"lastmile/internal/pkg/errs"
)

var (
	ErrNoActiveCouriersFound = errors.New("no active couriers found")
	ErrNoOrderFound          = errors.New("no order found")
	ErrOrderNeedsNoCourier   = errors.New("order type does not need a courier")
)

// AssignCourierCommandHandler orchestrates the courier assignment process.
// Loads the order, collects the active couriers with their open pickup
// addresses, and uses CourierDispatcher to select the best match by store
// affinity with a lowest-ETA fallback.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd, _ := NewAssignCourierCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("Order does not exist")
//	case errors.Is(err, ErrNoActiveCouriersFound):
//	    log.Println("Nobody is on shift")
//	case errors.Is(err, services.ErrCourierNotFound):
//	    log.Println("No courier serves this order type")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignCourierCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
// Requires an AssignUoWFactory for coordinating transactional updates across repositories.
func NewAssignCourierCommandHandler(uowFactory AssignUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
//
// Retrieves the order, gathers active couriers in directory order together
// with the store addresses of their undelivered orders, and dispatches.
// The chosen courier id and the Assigned status are persisted in one
// transaction. Returns ErrNoOrderFound for an unknown order id,
// ErrOrderNeedsNoCourier for order types outside courier dispatch, and
// ErrNoActiveCouriersFound when nobody is on shift; in all those cases the
// order keeps its current status.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	if !aggregate.Type().NeedsCourier() {
		return ErrOrderNeedsNoCourier
	}

	couriers, err := courierRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoActiveCouriersFound
	}

	candidates := make([]services.Candidate, 0, len(couriers))
	for _, c := range couriers {
		openOrders, ordersErr := ordersRepo.GetAllAssignedByCourier(ctx, c.ID())
		if ordersErr != nil {
			return ordersErr
		}

		addresses := make([]string, 0, len(openOrders))
		for _, open := range openOrders {
			addresses = append(addresses, open.StoreAddress())
		}

		candidates = append(candidates, services.Candidate{
			Courier:            c,
			OpenStoreAddresses: addresses,
		})
	}

	if _, err = services.NewCourierDispatcher().Dispatch(aggregate, candidates); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
