// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the delivery system. It
// implements decision logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - RateQuoter: assembles priced delivery offers for a checkout destination
//   - FacilityRanker: ranks drop-off facilities by great-circle distance
//   - CourierDispatcher: picks a courier for an order using store affinity
//     with a lowest-ETA fallback
//   - ComputeExpressWindow: the business-hours window calculation backing
//     express offers
//
// All services are pure: they take their inputs as values and never touch
// I/O, so callers (use case handlers) gather state up front and the services
// stay trivially unit-testable.
package services
