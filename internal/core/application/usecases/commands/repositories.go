// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lastmile/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// FacilityRepoFactory provides access to the facility repository within a transaction.
	FacilityRepoFactory interface {
		FacilityRepository() ports.FacilityRepository
	}

	// MerchantConfigRepoFactory provides access to the merchant config repository within a transaction.
	MerchantConfigRepoFactory interface {
		MerchantConfigRepository() ports.MerchantConfigRepository
	}

	// IngestUoW manages the order creation transaction: the dedup lookup, the
	// merchant config and facility reads, and the insert all share one
	// transaction. Courier assignment runs separately afterwards.
	IngestUoW interface {
		TxManager
		OrderRepoFactory
		FacilityRepoFactory
		MerchantConfigRepoFactory
	}

	// IngestUoWFactory creates new ingestion unit of work instances.
	IngestUoWFactory interface {
		Create() IngestUoW
	}

	// AssignUoW manages the courier assignment transaction across the order
	// and courier aggregates.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}
)
