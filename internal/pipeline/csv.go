package pipeline

import (
	"regexp"
	"strings"

	"estimator/internal"
)

// Tabular input comes in already deduplicated, one intervention per row, so
// this path skips the rule cascade and the aggregation pass entirely.

var (
	reCSVDelim = regexp.MustCompile(`[,;\t]`)

	reHeaderName   = regexp.MustCompile(`(?i)^\s*(name|item|intervention|work|description|activity)`)
	reHeaderQty    = regexp.MustCompile(`(?i)^\s*(qty|quantity|count|nos?\b|number|units?)`)
	reHeaderClause = regexp.MustCompile(`(?i)^\s*(clause|irc|code|ref|reference|standard|spec)`)
)

// ParseCSV splits the text into rows on line breaks and cells on
// comma/semicolon/tab, then hands the records to ParseRecords.
func (e *Extractor) ParseCSV(text string) []internal.Intervention {
	rows := [][]string{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := reCSVDelim.Split(line, -1)
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	return e.ParseRecords(rows)
}

// ParseRecords treats the first row as the header. Header cells are matched
// against synonym groups for the name/quantity/clause columns; when none
// match, columns 0/1 serve as name/quantity and no clause column is read.
// A row contributes an item only if it has a non-empty name or a non-zero
// quantity.
func (e *Extractor) ParseRecords(rows [][]string) []internal.Intervention {
	if len(rows) == 0 {
		return nil
	}

	nameIdx, qtyIdx, clauseIdx := headerColumns(rows[0])
	if nameIdx < 0 && qtyIdx < 0 {
		nameIdx, qtyIdx = 0, 1
	}

	out := []internal.Intervention{}
	for _, row := range rows[1:] {
		name := pickCell(row, nameIdx)
		qty := parseQuantity(pickCell(row, qtyIdx))
		if name == "" && qty == 0 {
			continue
		}
		out = append(out, internal.Intervention{
			ID:       e.ids(),
			Name:     name,
			Quantity: qty,
			Clause:   pickCell(row, clauseIdx),
		})
	}
	return out
}

func headerColumns(header []string) (nameIdx, qtyIdx, clauseIdx int) {
	nameIdx, qtyIdx, clauseIdx = -1, -1, -1
	for i, cell := range header {
		switch {
		case nameIdx < 0 && reHeaderName.MatchString(cell):
			nameIdx = i
		case qtyIdx < 0 && reHeaderQty.MatchString(cell):
			qtyIdx = i
		case clauseIdx < 0 && reHeaderClause.MatchString(cell):
			clauseIdx = i
		}
	}
	return
}

func pickCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
