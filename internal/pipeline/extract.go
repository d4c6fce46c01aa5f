package pipeline

import (
	"github.com/google/uuid"

	"estimator/internal"
	"estimator/internal/util"
)

// IDSource mints item ids. Ids are fresh every run and never stable across
// runs; only names are stable keys.
type IDSource func() string

type Extractor struct {
	ids IDSource
}

func NewExtractor() *Extractor {
	return &Extractor{ids: uuid.NewString}
}

// NewExtractorWithIDs lets tests inject a deterministic generator.
func NewExtractorWithIDs(ids IDSource) *Extractor {
	return &Extractor{ids: ids}
}

// Extract runs the segmenter and the rule cascade over every line and
// returns the raw candidates in line order. Candidates still carry
// duplicate names; Aggregate merges them.
func (e *Extractor) Extract(text string) []internal.Intervention {
	lines := Segment(text)
	out := make([]internal.Intervention, 0, len(lines))
	for _, line := range lines {
		c, ok := classifyLine(util.NormalizeSpaces(line))
		if !ok {
			continue
		}
		out = append(out, internal.Intervention{
			ID:       e.ids(),
			Name:     c.Name,
			Quantity: c.Quantity,
			Clause:   c.Clause,
		})
	}
	return out
}

// ExtractItems is the full text path: extract candidates, then merge them
// into the canonical deduplicated list.
func (e *Extractor) ExtractItems(text string) []internal.Intervention {
	return e.Aggregate(e.Extract(text))
}
