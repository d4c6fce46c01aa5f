package pipeline

import (
	"estimator/internal"
	"estimator/internal/decode"
	"estimator/internal/pricing"
)

// EstimateService runs the whole flow for one report: decode, extract or
// row-parse, aggregate, price. The catalog is read-only input fixed at
// construction; calls share no mutable state, so concurrent estimates over
// different inputs are safe.
type EstimateService struct {
	extractor *Extractor
	catalog   []internal.PriceEntry
}

// NamedContent is one file-like input: the name picks the decoder.
type NamedContent struct {
	Name    string
	Content []byte
}

func NewEstimateService(catalog []internal.PriceEntry) *EstimateService {
	return &EstimateService{extractor: NewExtractor(), catalog: catalog}
}

// NewEstimateServiceWithIDs is the test hook for reproducible item ids.
func NewEstimateServiceWithIDs(catalog []internal.PriceEntry, ids IDSource) *EstimateService {
	return &EstimateService{extractor: NewExtractorWithIDs(ids), catalog: catalog}
}

// EstimateText prices the canonical items extracted from free-form text.
func (s *EstimateService) EstimateText(text string) internal.Estimate {
	items := s.extractor.ExtractItems(text)
	return s.price(items, text)
}

// EstimateFile decodes one uploaded file and routes it to the tabular or
// heuristic path.
func (s *EstimateService) EstimateFile(filename string, content []byte) internal.Estimate {
	return s.EstimateParts([]NamedContent{{Name: filename, Content: content}})
}

// EstimateParts handles a report split over several parts (mail body plus
// attachments). Free-form parts pool their candidates into one aggregation
// pass so mentions merge across parts; tabular rows are appended as-is,
// already deduplicated by contract.
func (s *EstimateService) EstimateParts(parts []NamedContent) internal.Estimate {
	candidates := []internal.Intervention{}
	tabular := []internal.Intervention{}
	texts := []string{}

	for _, part := range parts {
		d := decode.File(part.Name, part.Content)
		switch {
		case d.Source == internal.SourceCSV:
			tabular = append(tabular, s.extractor.ParseCSV(d.Text)...)
			texts = append(texts, d.Text)
		case d.Tabular():
			tabular = append(tabular, s.extractor.ParseRecords(d.Rows)...)
		default:
			candidates = append(candidates, s.extractor.Extract(d.Text)...)
			texts = append(texts, d.Text)
		}
	}

	items := s.extractor.Aggregate(candidates)
	items = append(items, tabular...)
	return s.price(items, joinNonEmpty(texts))
}

func (s *EstimateService) price(items []internal.Intervention, extracted string) internal.Estimate {
	costs := pricing.ComputeCosts(items, s.catalog)
	return internal.Estimate{
		Items:         items,
		Costs:         costs,
		Overall:       pricing.OverallTotal(items, costs),
		ExtractedText: extracted,
	}
}

func joinNonEmpty(texts []string) string {
	out := ""
	for _, t := range texts {
		if t == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += t
	}
	return out
}
