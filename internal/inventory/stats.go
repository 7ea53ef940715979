package inventory

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// InventoryStats is the aggregate view of the catalog used for display.
// Metrics depending on optional data degrade to zero values instead of
// failing when the data is absent.
type InventoryStats struct {
	Total           int     `json:"total"`
	Available       int     `json:"available"`
	Reserved        int     `json:"reserved"`
	AvgPrice        float64 `json:"avg_price"`
	MostPopularMake string  `json:"most_popular_make"`
	PriceRange      string  `json:"price_range"`
	BodyStyles      int     `json:"body_styles"`
	FuelEfficient   int     `json:"fuel_efficiency"`
	LuxuryCount     int     `json:"luxury_count"`
}

// Fuel types counted as efficient, in both historical spellings.
var efficientFuelTypes = map[string]struct{}{
	"hybrid":    {},
	"electric":  {},
	"híbrido":   {},
	"eléctrico": {},
}

// Stats computes catalog aggregates: counts by status, rounded average
// price, most frequent make, price range, distinct body styles,
// hybrid/electric count and the number of vehicles priced above the 80th
// percentile.
func (s *Store) Stats() InventoryStats {
	catalog := s.snapshot()

	stats := InventoryStats{Total: len(catalog)}
	if len(catalog) == 0 {
		return stats
	}

	var (
		priceSum   float64
		prices     = make([]float64, 0, len(catalog))
		makeCounts = map[string]int{}
		styles     = map[string]struct{}{}
	)

	for _, v := range catalog {
		switch v.Status {
		case StatusAvailable:
			stats.Available++
		case StatusReserved:
			stats.Reserved++
		}

		priceSum += v.Price
		prices = append(prices, v.Price)

		if v.Make != "" {
			makeCounts[v.Make]++
		}
		if v.BodyStyle != "" {
			styles[strings.ToUpper(v.BodyStyle)] = struct{}{}
		}
		if _, ok := efficientFuelTypes[strings.ToLower(v.FuelType)]; ok {
			stats.FuelEfficient++
		}
	}

	stats.AvgPrice = math.Round(priceSum / float64(len(catalog)))
	stats.BodyStyles = len(styles)

	sort.Float64s(prices)
	stats.PriceRange = fmt.Sprintf("$%s - $%s",
		humanize.Commaf(prices[0]), humanize.Commaf(prices[len(prices)-1]))

	// Most frequent make; ties break lexicographically for determinism.
	best := ""
	for name, n := range makeCounts {
		if best == "" || n > makeCounts[best] || (n == makeCounts[best] && name < best) {
			best = name
		}
	}
	if best == "" {
		best = "N/A"
	}
	stats.MostPopularMake = best

	threshold := percentile(prices, 0.8)
	for _, p := range prices {
		if p > threshold {
			stats.LuxuryCount++
		}
	}

	return stats
}

// percentile computes the q-quantile of sorted values with linear
// interpolation between closest ranks.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
