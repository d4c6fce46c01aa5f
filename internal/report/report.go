package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"estimator/internal"
	"estimator/internal/util"
)

// BuildText renders the human-facing cost estimate: every intervention with
// its quantity and clause, per-item pricing with source attribution, and
// the grand total. Unpriced items show a dash for the source.
func BuildText(est internal.Estimate) string {
	var b strings.Builder

	b.WriteString("Extracted Interventions with Details\n\n")
	for _, item := range est.Items {
		b.WriteString(fmt.Sprintf("%s: Quantity %d", item.Name, item.Quantity))
		if item.Clause != "" {
			b.WriteString(", Clause " + item.Clause)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nCost Estimates per Intervention\n\n")
	for _, item := range est.Items {
		unit, total := 0.0, 0.0
		source := "-"
		if cost, ok := est.Costs[item.ID]; ok {
			unit, total, source = cost.UnitPrice, cost.Total, cost.Source
		}
		b.WriteString(item.Name + "\n")
		b.WriteString("Unit Price: ₹" + util.FormatINR(unit) + "\n")
		b.WriteString("Total Cost: ₹" + util.FormatINR(total) + "\n")
		b.WriteString("Price Source: " + source + "\n\n")
	}

	b.WriteString("Overall Total: ₹" + util.FormatINR(est.Overall) + "\n")
	return b.String()
}

// WriteText saves the text report next to the other exports.
func WriteText(est internal.Estimate, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(BuildText(est)), 0o644)
}

// BuildRows flattens an estimate for tabular export.
func BuildRows(est internal.Estimate) []internal.EstimateRow {
	rows := make([]internal.EstimateRow, 0, len(est.Items))
	for _, item := range est.Items {
		row := internal.EstimateRow{
			Name:     item.Name,
			Quantity: item.Quantity,
			Clause:   item.Clause,
		}
		if cost, ok := est.Costs[item.ID]; ok {
			unit, total, source := cost.UnitPrice, cost.Total, cost.Source
			row.UnitPrice = &unit
			row.Total = &total
			row.Source = &source
		}
		rows = append(rows, row)
	}
	return rows
}
