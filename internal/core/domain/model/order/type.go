package order

import (
	"fmt"
	"strconv"
	"strings"

	"lastmile/internal/pkg/errs"
)

// Service codes exposed to the commerce platform at quote time. The code a
// shopper selects at checkout comes back on the order event and determines
// the order type. Locker codes embed the facility id after the prefix.
const (
	// ServiceCodeExpressHome identifies the two-hour express home delivery.
	ServiceCodeExpressHome = "express_home_2h"
	// ServiceCodeEveningHome identifies the same-evening home delivery.
	ServiceCodeEveningHome = "home_evening"
	// ServiceCodeLockerPrefix prefixes locker offers; the facility id follows.
	ServiceCodeLockerPrefix = "locker_"
	// ServiceCodeLockerGeneric is the fallback locker offer emitted when no
	// specific facility could be ranked at quote time.
	ServiceCodeLockerGeneric = "locker_nearest"
)

// Type represents the delivery service family of an order.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// HomeDelivery is the express home delivery handled by a courier.
	HomeDelivery

	// EveningDelivery is the same-evening home delivery on the evening route.
	EveningDelivery

	// Locker is a delivery to a third-party drop-off facility.
	Locker
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:     "Unknown",
		HomeDelivery:    "HomeDelivery",
		EveningDelivery: "EveningDelivery",
		Locker:          "Locker",
	}
}

// Validate checks that the Type is one of the defined delivery families.
func (t Type) Validate() error {
	switch t {
	case HomeDelivery, EveningDelivery, Locker:
		return nil
	case TypeUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
		fmt.Errorf("%d is not a valid order type", t))
}

// String returns the human-readable name of the type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// NeedsCourier reports whether orders of this type go through courier
// assignment at ingestion time. Evening orders are batched onto the evening
// route and locker orders are matched to a facility instead.
func (t Type) NeedsCourier() bool {
	return t == HomeDelivery
}

// TypeFromServiceCode derives the order type from the shipping service code
// selected at checkout. For locker codes the embedded facility id is returned
// as well; it is zero for the generic locker fallback. Unrecognized or empty
// codes default to home delivery, matching how orders without a shipping line
// are treated.
func TypeFromServiceCode(code string) (Type, int64) {
	switch {
	case code == ServiceCodeEveningHome:
		return EveningDelivery, 0
	case code == ServiceCodeLockerGeneric:
		return Locker, 0
	case strings.HasPrefix(code, ServiceCodeLockerPrefix):
		id, err := strconv.ParseInt(strings.TrimPrefix(code, ServiceCodeLockerPrefix), 10, 64)
		if err != nil {
			return Locker, 0
		}
		return Locker, id
	default:
		return HomeDelivery, 0
	}
}

// LockerServiceCode builds the service code that encodes a facility id.
func LockerServiceCode(facilityID int64) string {
	return ServiceCodeLockerPrefix + strconv.FormatInt(facilityID, 10)
}
