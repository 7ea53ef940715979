package inventory

import (
	"sort"
	"strings"
)

// Scoring constants. The availability base is constant across candidates in
// practice (Filter already enforces Available) but is scored anyway so the
// numbers stay comparable with the historical behavior.
const (
	scoreAvailableBase   = 10.0
	scoreFamilyBodyMatch = 5.0
	scoreFamilySafety    = 3.0
	scoreEconomicalPrice = 3.0
	scoreEconomicalFuel  = 4.0
	scoreHighMileage     = -2.0
	scoreRecentYear      = 2.0

	economicalPriceCeiling = 30000.0
	highMileageThreshold   = 100000
	recentYearWindow       = 2
)

// Score computes the additive relevance of one vehicle for the given
// criteria. Components are independent and stack; the result is not
// normalised. refYear is the calendar year to judge recency against.
func Score(v Vehicle, c SearchCriteria, refYear int) float64 {
	score := 0.0

	if v.Status == StatusAvailable {
		score += scoreAvailableBase
	}

	if c.FamilyFriendly {
		upper := strings.ToUpper(v.BodyStyle)
		if upper == BodySUV || upper == BodySedan {
			score += scoreFamilyBodyMatch
		}
		if strings.Contains(strings.ToLower(v.Features), "safety") {
			score += scoreFamilySafety
		}
	}

	if c.Economical {
		if v.Price < economicalPriceCeiling {
			score += scoreEconomicalPrice
		}
		if strings.Contains(strings.ToLower(v.FuelType), "hybrid") {
			score += scoreEconomicalFuel
		}
	}

	if v.Mileage > highMileageThreshold {
		score += scoreHighMileage
	}

	if v.Year >= refYear-recentYearWindow {
		score += scoreRecentYear
	}

	return score
}

// Rank orders candidates by descending relevance, breaking ties by original
// order, and truncates to at most max results.
func Rank(candidates []Vehicle, c SearchCriteria, refYear int, max int) []Vehicle {
	ranked := make([]Vehicle, len(candidates))
	copy(ranked, candidates)

	scores := make([]float64, len(ranked))
	for i, v := range ranked {
		scores[i] = Score(v, c, refYear)
	}

	indices := make([]int, len(ranked))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	if max > 0 && len(indices) > max {
		indices = indices[:max]
	}

	out := make([]Vehicle, len(indices))
	for i, idx := range indices {
		out[i] = ranked[idx]
	}
	return out
}
