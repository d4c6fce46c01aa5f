package internal

type TextSource string

const (
	SourcePlainText TextSource = "text"
	SourcePDF       TextSource = "pdf"
	SourceDOCX      TextSource = "docx"
	SourceHTML      TextSource = "html"
	SourceCSV       TextSource = "csv"
	SourceXLSX      TextSource = "xlsx"
)

// Intervention is one extracted road-safety line item. Quantity never goes
// negative; an unparsable quantity collapses to 0. Clause is a literal
// citation substring from the source text, or empty.
type Intervention struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Clause   string `json:"clause"`
}

// PriceEntry maps a lowercase keyword to a unit price. Entry order matters:
// the first entry whose key appears inside an item name wins.
type PriceEntry struct {
	Key       string  `json:"key"`
	UnitPrice float64 `json:"unitPrice"`
	Source    string  `json:"source"`
}

type ItemCost struct {
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
	Source    string  `json:"source"`
}

// Estimate is the full result handed to presentation: aggregated items,
// per-item costs keyed by item id (unmatched items absent from the map),
// and the grand total over matched items.
type Estimate struct {
	Items         []Intervention      `json:"items"`
	Costs         map[string]ItemCost `json:"costs"`
	Overall       float64             `json:"overall"`
	ExtractedText string              `json:"extractedText,omitempty"`
}

type EstimateRow struct {
	Name      string
	Quantity  int
	Clause    string
	UnitPrice *float64
	Total     *float64
	Source    *string
}

type FetchedMailMessage struct {
	MessageID  string
	Subject    string
	From       string
	ReceivedAt string
	Raw        []byte
}
