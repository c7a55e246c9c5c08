package services

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/courier"
	"lastmile/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for
// order dispatch. This occurs when either no candidates are provided or none
// of them is active and serving the order's delivery family.
var ErrCourierNotFound = errors.New("courier not found")

// Candidate pairs a courier with the store addresses of the courier's
// currently undelivered orders. The caller loads the addresses so the
// dispatcher stays free of I/O.
type Candidate struct {
	Courier *courier.Courier

	// OpenStoreAddresses are the pickup addresses of the courier's
	// undelivered orders, used for the affinity pass.
	OpenStoreAddresses []string
}

// CourierDispatcher is a domain service responsible for finding and
// assigning a courier for a delivery order.
//
// Selection is a two-tier heuristic:
//  1. Affinity pass: a candidate already holding an undelivered order from the
//     same store address as the new order wins immediately (first match in
//     directory order). This clusters pickups from one store onto one route.
//  2. ETA fallback: otherwise the candidate with the smallest last reported
//     ETA wins. Candidates without a recorded ETA sort last, so they are
//     only chosen when nobody has a real ETA.
//
// The heuristic is deliberately greedy: it optimizes the single order at
// hand, not the global workload across couriers.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch finds a courier for the order and executes the assignment.
//
// Returns ErrCourierNotFound when no candidate is active and serving the
// order's delivery family; the order is left untouched in that case. On
// success the order is assigned to the returned courier.
func (d CourierDispatcher) Dispatch(o *order.Order, candidates []Candidate) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := d.findBestCourier(o, candidates)
	if err != nil {
		return nil, err
	}

	if err = o.AssignCourier(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestCourier evaluates the candidates in directory order: affinity
// match first, lowest reported ETA second.
func (d CourierDispatcher) findBestCourier(o *order.Order, candidates []Candidate) (*courier.Courier, error) {
	var best *courier.Courier

	for _, candidate := range candidates {
		canTake, err := candidate.Courier.CanTake(o)
		if err != nil {
			return nil, err
		}
		if !canTake {
			continue
		}

		if hasStoreAffinity(o, candidate.OpenStoreAddresses) {
			return candidate.Courier, nil
		}

		if best == nil || candidate.Courier.EtaForSort() < best.EtaForSort() {
			best = candidate.Courier
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}

	return best, nil
}

// hasStoreAffinity reports whether any of the open pickup addresses
// matches the new order's store address. Empty addresses never match.
func hasStoreAffinity(o *order.Order, openStoreAddresses []string) bool {
	storeAddress := strings.TrimSpace(o.StoreAddress())
	if storeAddress == "" {
		return false
	}

	for _, pending := range openStoreAddresses {
		if strings.EqualFold(strings.TrimSpace(pending), storeAddress) {
			return true
		}
	}

	return false
}
