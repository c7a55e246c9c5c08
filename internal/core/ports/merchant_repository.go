package ports

import (
	"context"

	"lastmile/internal/core/domain/model/merchant"
)

// MerchantConfigRepository defines the persistence contract for merchant
// delivery configurations, keyed by shop domain.
type MerchantConfigRepository interface {
	// Save creates or replaces the configuration for the config's shop domain.
	Save(ctx context.Context, config *merchant.Config) error

	// Get retrieves the configuration for a shop domain.
	// Returns errs.ErrObjectNotFound when the merchant has no stored
	// configuration; callers fall back to merchant.DefaultConfig.
	Get(ctx context.Context, shopDomain string) (*merchant.Config, error)
}
