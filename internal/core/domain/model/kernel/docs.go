// Package kernel provides core domain primitives shared across the delivery domain.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Coordinates: A geographic position (latitude/longitude) with great-circle distance
//   - Money: An amount held in integer minor currency units to avoid floating-point drift
//   - TimeWindow: A closed [start, end] delivery time interval
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
