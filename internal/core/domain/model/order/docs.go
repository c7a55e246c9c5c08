// Package order provides domain entities and business logic for order management
// in the delivery system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, recipient, and lifecycle
//   - Type: The delivery service family (home, evening, locker) with service-code parsing
//   - Status: A state machine that enforces valid order status transitions
//   - Recipient: The delivery address and contact details
//   - FacilitySnapshot: Drop-off point details frozen onto locker orders
//
// Key business rules:
//   - Every order carries the commerce platform's order id as its natural dedup key;
//     at most one local order may exist per external id
//   - Order status follows a defined workflow: Pending -> Assigned -> Completed
//   - Orders can be reassigned while in the Assigned status
//   - Locker orders carry a facility snapshot if and only if the facility resolved
//     at ingestion time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
