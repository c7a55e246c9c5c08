// Package merchant provides per-merchant delivery configuration: which service
// families are enabled, what each costs, how many nearby lockers to surface,
// cutoff times, and the served-area postcode allowlist. The configuration is
// read-only to the quoting engine; it is mutated only through merchant
// settings, which live outside this core.
package merchant

import (
	"math"
	"sort"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// Documented pricing defaults in major currency units. Missing or invalid
// configuration values fall back to these before the single conversion to
// minor units, never to a silent zero.
const (
	// DefaultCurrency is the currency all offers are priced in.
	DefaultCurrency = "SEK"
	// DefaultExpressPriceMajor is the default two-hour express price.
	DefaultExpressPriceMajor = 99.0
	// DefaultEveningPriceMajor is the default same-evening price.
	DefaultEveningPriceMajor = 65.0
	// DefaultLockerPriceMajor is the default locker drop-off price.
	DefaultLockerPriceMajor = 45.0
)

// ErrConfigIsNotConstructed is returned when using an improperly initialized Config.
var ErrConfigIsNotConstructed = errs.NewValueIsRequiredError(
	"merchant config must be created via NewConfig or DefaultConfig constructors")

// Params carries the raw, possibly incomplete settings row for a merchant.
// Price pointers are nil when the merchant never configured a value; the
// constructor resolves defaults exactly once.
type Params struct {
	StoreAddress     string
	ExpressEnabled   bool
	EveningEnabled   bool
	LockerEnabled    bool
	ExpressPriceRaw  *float64
	EveningPriceRaw  *float64
	LockerPriceRaw   *float64
	FacilityCount    int
	EveningCutoff    string
	LockerCutoff     string
	ServedPostcodes  []string
}

// Config is the resolved per-merchant delivery configuration.
// All prices are held as Money in minor units; the allowlist is normalized.
type Config struct {
	shopDomain      string
	storeAddress    string
	expressEnabled  bool
	eveningEnabled  bool
	lockerEnabled   bool
	expressPrice    kernel.Money
	eveningPrice    kernel.Money
	lockerPrice     kernel.Money
	facilityCount   int
	eveningCutoff   string
	lockerCutoff    string
	servedPostcodes map[string]struct{}

	guard guard.ConstructorGuard
}

// NewConfig resolves a merchant settings row into a Config.
// Invalid raw prices (nil, NaN, infinite, or negative) fall back to the
// documented defaults; a negative facility count is clamped to zero.
func NewConfig(shopDomain string, params Params) (*Config, error) {
	shopDomain = strings.ToLower(strings.TrimSpace(shopDomain))
	if shopDomain == "" {
		return nil, errs.NewValueIsRequiredError("shop domain")
	}

	facilityCount := params.FacilityCount
	if facilityCount < 0 {
		facilityCount = 0
	}

	served := make(map[string]struct{}, len(params.ServedPostcodes))
	for _, p := range params.ServedPostcodes {
		if normalized := NormalizePostcode(p); normalized != "" {
			served[normalized] = struct{}{}
		}
	}

	return &Config{
		shopDomain:      shopDomain,
		storeAddress:    strings.TrimSpace(params.StoreAddress),
		expressEnabled:  params.ExpressEnabled,
		eveningEnabled:  params.EveningEnabled,
		lockerEnabled:   params.LockerEnabled,
		expressPrice:    resolvePrice(params.ExpressPriceRaw, DefaultExpressPriceMajor),
		eveningPrice:    resolvePrice(params.EveningPriceRaw, DefaultEveningPriceMajor),
		lockerPrice:     resolvePrice(params.LockerPriceRaw, DefaultLockerPriceMajor),
		facilityCount:   facilityCount,
		eveningCutoff:   strings.TrimSpace(params.EveningCutoff),
		lockerCutoff:    strings.TrimSpace(params.LockerCutoff),
		servedPostcodes: served,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// DefaultConfig builds the configuration used for merchants that have no
// settings row yet: all service families enabled at default prices, no
// lockers surfaced, and the default served area.
func DefaultConfig(shopDomain string) (*Config, error) {
	return NewConfig(shopDomain, Params{
		ExpressEnabled: true,
		EveningEnabled: true,
		LockerEnabled:  true,
	})
}

// resolvePrice applies the documented default for absent or unusable raw values
// and performs the one-time conversion to minor units.
func resolvePrice(raw *float64, defaultMajor float64) kernel.Money {
	major := defaultMajor
	if raw != nil && !math.IsNaN(*raw) && !math.IsInf(*raw, 0) && *raw >= 0 {
		major = *raw
	}

	money, err := kernel.MoneyFromMajorUnits(major, DefaultCurrency)
	if err != nil {
		// Defaults are constants; conversion of them cannot fail.
		money, _ = kernel.MoneyFromMajorUnits(defaultMajor, DefaultCurrency)
	}
	return money
}

// Validate ensures the Config was created via a constructor.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigIsNotConstructed
	}
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// ShopDomain returns the merchant's shop domain, lower-cased.
func (c *Config) ShopDomain() string { return c.shopDomain }

// StoreAddress returns the merchant's pickup address; may be empty.
func (c *Config) StoreAddress() string { return c.storeAddress }

// ExpressEnabled reports whether the two-hour express family is offered.
func (c *Config) ExpressEnabled() bool { return c.expressEnabled }

// EveningEnabled reports whether the same-evening family is offered.
func (c *Config) EveningEnabled() bool { return c.eveningEnabled }

// LockerEnabled reports whether locker drop-off is offered.
func (c *Config) LockerEnabled() bool { return c.lockerEnabled }

// ExpressPrice returns the resolved express price in minor units.
func (c *Config) ExpressPrice() kernel.Money { return c.expressPrice }

// EveningPrice returns the resolved evening price in minor units.
func (c *Config) EveningPrice() kernel.Money { return c.eveningPrice }

// LockerPrice returns the resolved locker price in minor units.
func (c *Config) LockerPrice() kernel.Money { return c.lockerPrice }

// FacilityCount returns how many nearest lockers to surface; zero disables
// locker offers entirely.
func (c *Config) FacilityCount() int { return c.facilityCount }

// EveningCutoff returns the "HH:MM" cutoff for same-evening orders; may be empty.
func (c *Config) EveningCutoff() string { return c.eveningCutoff }

// LockerCutoff returns the "HH:MM" cutoff for locker orders; may be empty.
func (c *Config) LockerCutoff() string { return c.lockerCutoff }

// ServedPostcodes returns the explicit allowlist in sorted order, or an empty
// slice when the merchant relies on the default served area.
func (c *Config) ServedPostcodes() []string {
	postcodes := make([]string, 0, len(c.servedPostcodes))
	for p := range c.servedPostcodes {
		postcodes = append(postcodes, p)
	}
	sort.Strings(postcodes)
	return postcodes
}

// ServesPostcode reports whether the destination postcode is inside the
// merchant's served area. Merchants without an explicit allowlist fall back
// to the default metropolitan area.
func (c *Config) ServesPostcode(postcode string) bool {
	normalized := NormalizePostcode(postcode)
	if normalized == "" {
		return false
	}

	if len(c.servedPostcodes) > 0 {
		_, ok := c.servedPostcodes[normalized]
		return ok
	}

	_, ok := defaultServedPostcodes[normalized]
	return ok
}

// NormalizePostcode strips all spaces so "411 01" and "41101" compare equal.
func NormalizePostcode(postcode string) string {
	return strings.ReplaceAll(strings.TrimSpace(postcode), " ", "")
}
