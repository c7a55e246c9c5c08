// Package merchantrepo provides data transfer objects and mapping functions
// for per-merchant delivery configuration. One row per shop domain; merchants
// without a row fall back to the default configuration in the callers.
package merchantrepo

import (
	"strings"

	"lastmile/internal/core/domain/model/merchant"
)

// MerchantConfigDTO represents the database structure for merchant settings.
// Prices are stored in the currency's minor units, exactly as the domain
// holds them, so no rounding happens on the persistence round trip.
type MerchantConfigDTO struct {
	ShopDomain      string `gorm:"primaryKey;type:varchar(255)"`
	StoreAddress    string
	ExpressEnabled  bool
	EveningEnabled  bool
	LockerEnabled   bool
	ExpressPrice    int64
	EveningPrice    int64
	LockerPrice     int64
	Currency        string `gorm:"type:varchar(3)"`
	FacilityCount   int
	EveningCutoff   string `gorm:"type:varchar(5)"`
	LockerCutoff    string `gorm:"type:varchar(5)"`
	ServedPostcodes string
}

// TableName specifies the database table name for merchant settings.
func (MerchantConfigDTO) TableName() string {
	return "merchant_configs"
}

// fromDomain converts a merchant configuration to its database representation.
func fromDomain(config *merchant.Config) MerchantConfigDTO {
	return MerchantConfigDTO{
		ShopDomain:      config.ShopDomain(),
		StoreAddress:    config.StoreAddress(),
		ExpressEnabled:  config.ExpressEnabled(),
		EveningEnabled:  config.EveningEnabled(),
		LockerEnabled:   config.LockerEnabled(),
		ExpressPrice:    config.ExpressPrice().MinorUnits(),
		EveningPrice:    config.EveningPrice().MinorUnits(),
		LockerPrice:     config.LockerPrice().MinorUnits(),
		Currency:        config.ExpressPrice().Currency(),
		FacilityCount:   config.FacilityCount(),
		EveningCutoff:   config.EveningCutoff(),
		LockerCutoff:    config.LockerCutoff(),
		ServedPostcodes: strings.Join(config.ServedPostcodes(), ","),
	}
}

// toDomain converts a database DTO to a merchant configuration.
// Prices come back as minor units and are handed to the constructor in major
// units, which re-applies the same exact conversion.
func toDomain(dto MerchantConfigDTO) (*merchant.Config, error) {
	expressPrice := float64(dto.ExpressPrice) / 100
	eveningPrice := float64(dto.EveningPrice) / 100
	lockerPrice := float64(dto.LockerPrice) / 100

	var served []string
	if dto.ServedPostcodes != "" {
		served = strings.Split(dto.ServedPostcodes, ",")
	}

	return merchant.NewConfig(dto.ShopDomain, merchant.Params{
		StoreAddress:    dto.StoreAddress,
		ExpressEnabled:  dto.ExpressEnabled,
		EveningEnabled:  dto.EveningEnabled,
		LockerEnabled:   dto.LockerEnabled,
		ExpressPriceRaw: &expressPrice,
		EveningPriceRaw: &eveningPrice,
		LockerPriceRaw:  &lockerPrice,
		FacilityCount:   dto.FacilityCount,
		EveningCutoff:   dto.EveningCutoff,
		LockerCutoff:    dto.LockerCutoff,
		ServedPostcodes: served,
	})
}
