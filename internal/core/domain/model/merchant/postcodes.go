package merchant

import "strconv"

// defaultServedPostcodes is the metropolitan delivery area used for merchants
// without an explicit allowlist. Postcodes are stored space-stripped.
var defaultServedPostcodes = buildDefaultServedPostcodes()

type postcodeRange struct {
	from int
	to   int
}

func buildDefaultServedPostcodes() map[string]struct{} {
	ranges := []postcodeRange{
		{41101, 41140},
		{41143, 41143},
		{41248, 41285},
		{41301, 41330},
		{41346, 41346},
		{41390, 41390},
		{41448, 41473},
		{41475, 41479},
		{41502, 41502},
		{41505, 41505},
		{41511, 41517},
		{41522, 41528},
		{41571, 41571},
		{41643, 41644},
		{41647, 41683},
		{41701, 41704},
		{41706, 41718},
		{41720, 41726},
		{41730, 41730},
		{41739, 41741},
		{41750, 41753},
		{41755, 41758},
		{41760, 41770},
		{41779, 41779},
	}

	set := make(map[string]struct{})
	for _, r := range ranges {
		for code := r.from; code <= r.to; code++ {
			set[strconv.Itoa(code)] = struct{}{}
		}
	}
	return set
}
