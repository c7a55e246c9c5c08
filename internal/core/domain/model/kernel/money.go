package kernel

import (
	"fmt"
	"math"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via its constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromMajorUnits constructors")

// ErrAmountIsNegative is returned when a negative amount is supplied.
var ErrAmountIsNegative = errs.NewValueIsInvalidError("amount must not be negative")

// ErrCurrencyIsRequired is returned when the currency code is empty.
var ErrCurrencyIsRequired = errs.NewValueIsRequiredError("currency")

// Money holds a monetary amount as an integer count of the currency's minor
// units (for example öre or cents). Keeping money integral avoids the rounding
// drift that floating-point intermediates introduce; any conversion from a
// decimal major-unit price happens exactly once, at construction.
//
// Money is an immutable value object; the zero value is invalid.
type Money struct { //nolint:recvcheck //using for validation
	minorUnits int64
	currency   string
	guard      guard.ConstructorGuard
}

// NewMoney creates Money from an amount already expressed in minor units.
// The amount must be non-negative and the currency code non-empty.
func NewMoney(minorUnits int64, currency string) (Money, error) {
	if minorUnits < 0 {
		return Money{}, ErrAmountIsNegative
	}
	if currency == "" {
		return Money{}, ErrCurrencyIsRequired
	}

	return Money{
		minorUnits: minorUnits,
		currency:   currency,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromMajorUnits converts a decimal major-unit amount (e.g. 45.00) into
// minor units by multiplying by 100 and rounding to the nearest integer.
// NaN, infinite, or negative amounts are rejected.
func MoneyFromMajorUnits(majorUnits float64, currency string) (Money, error) {
	if math.IsNaN(majorUnits) || math.IsInf(majorUnits, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount is not a finite number")
	}

	return NewMoney(int64(math.Round(majorUnits*100)), currency)
}

// Validate checks that the Money was created via a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// MinorUnits returns the amount in the currency's smallest denomination.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// String implements fmt.Stringer, e.g. "4500 SEK".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.minorUnits, m.currency)
}

// IsEqual compares two amounts for equality of value and currency.
func (m Money) IsEqual(other Money) bool {
	return m.minorUnits == other.minorUnits && m.currency == other.currency
}
