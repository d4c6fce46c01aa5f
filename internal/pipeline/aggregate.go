package pipeline

import (
	"strings"

	"estimator/internal"
)

// Aggregate merges candidates sharing a name (case-insensitive) into one
// canonical item each: quantities sum, the first non-empty clause sticks and
// is never replaced, and output keeps first-seen order. Every canonical item
// gets a fresh id independent of the candidates it absorbed.
func (e *Extractor) Aggregate(candidates []internal.Intervention) []internal.Intervention {
	order := make([]string, 0, len(candidates))
	merged := map[string]*internal.Intervention{}

	for _, c := range candidates {
		key := strings.ToLower(c.Name)
		if existing, ok := merged[key]; ok {
			existing.Quantity += c.Quantity
			if existing.Clause == "" && c.Clause != "" {
				existing.Clause = c.Clause
			}
			continue
		}
		cp := c
		merged[key] = &cp
		order = append(order, key)
	}

	out := make([]internal.Intervention, 0, len(order))
	for _, key := range order {
		item := *merged[key]
		item.ID = e.ids()
		out = append(out, item)
	}
	return out
}
