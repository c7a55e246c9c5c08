package services

import (
	"sort"

	"lastmile/internal/core/domain/model/facility"
	"lastmile/internal/core/domain/model/kernel"
)

// RankedFacility pairs a facility with its great-circle distance from the
// quoted destination.
type RankedFacility struct {
	Facility *facility.Facility

	// DistanceMeters is the haversine distance from the destination.
	DistanceMeters float64
}

// FacilityRanker is a domain service that orders drop-off facilities by
// ascending distance from a destination.
//
// Ranking is deterministic: facilities at equal distance keep their
// directory order (stable sort), so repeated quotes for the same
// destination always surface the same facilities in the same order.
type FacilityRanker struct{}

// NewFacilityRanker creates a new FacilityRanker instance.
func NewFacilityRanker() FacilityRanker {
	return FacilityRanker{}
}

// Rank computes the distance from the destination to every facility, sorts
// ascending, and returns the first topK entries. A topK of zero or a
// negative value yields an empty result. When topK exceeds the directory
// size all facilities are returned.
func (r FacilityRanker) Rank(
	destination kernel.Coordinates, facilities []*facility.Facility, topK int,
) ([]RankedFacility, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	if topK <= 0 || len(facilities) == 0 {
		return nil, nil
	}

	ranked := make([]RankedFacility, 0, len(facilities))
	for _, f := range facilities {
		if err := f.Validate(); err != nil {
			return nil, err
		}

		distance, err := destination.DistanceTo(f.Coordinates())
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, RankedFacility{Facility: f, DistanceMeters: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	if topK < len(ranked) {
		ranked = ranked[:topK]
	}

	return ranked, nil
}
