package pricing

import (
	"strings"

	"estimator/internal"
)

// ComputeCosts prices each item against the catalog. The scan takes the
// first entry whose key appears inside the lowercased item name, so callers
// order more specific keys ("speed breaker") ahead of generic ones
// ("signage"). Items matching no entry are left out of the map entirely;
// absence is the signal.
//
// First-match-wins is order-sensitive and can mis-price a name containing
// several catalog keys. That is the documented behavior, not a bug to fix.
func ComputeCosts(items []internal.Intervention, entries []internal.PriceEntry) map[string]internal.ItemCost {
	out := map[string]internal.ItemCost{}
	for _, item := range items {
		name := strings.ToLower(item.Name)
		for _, entry := range entries {
			key := strings.ToLower(strings.TrimSpace(entry.Key))
			if key == "" || !strings.Contains(name, key) {
				continue
			}
			out[item.ID] = internal.ItemCost{
				UnitPrice: entry.UnitPrice,
				Total:     entry.UnitPrice * float64(item.Quantity),
				Source:    entry.Source,
			}
			break
		}
	}
	return out
}

// OverallTotal sums the matched totals; unmatched items contribute zero.
func OverallTotal(items []internal.Intervention, costs map[string]internal.ItemCost) float64 {
	total := 0.0
	for _, item := range items {
		if cost, ok := costs[item.ID]; ok {
			total += cost.Total
		}
	}
	return total
}
