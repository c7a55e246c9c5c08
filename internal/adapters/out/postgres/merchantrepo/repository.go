package merchantrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lastmile/internal/core/domain/model/merchant"
	"lastmile/internal/pkg/errs"
)

// GormMerchantConfigRepository implements MerchantConfigRepository using GORM.
type GormMerchantConfigRepository struct {
	db *gorm.DB
}

// NewGormMerchantConfigRepository creates a new GORM merchant config repository.
func NewGormMerchantConfigRepository(db *gorm.DB) *GormMerchantConfigRepository {
	return &GormMerchantConfigRepository{db: db}
}

// Save upserts the merchant's settings row.
func (r *GormMerchantConfigRepository) Save(ctx context.Context, config *merchant.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dto := fromDomain(config)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Get retrieves the settings for a shop domain. Callers treat
// errs.ErrObjectNotFound as "use the default configuration".
func (r *GormMerchantConfigRepository) Get(ctx context.Context, shopDomain string) (*merchant.Config, error) {
	shopDomain = strings.ToLower(strings.TrimSpace(shopDomain))
	if shopDomain == "" {
		return nil, errs.NewValueIsRequiredError("shop domain")
	}

	var dto MerchantConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "shop_domain = ?", shopDomain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchant config", shopDomain)
		}
		return nil, err
	}

	return toDomain(dto)
}
