package decode

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"estimator/internal/util"
)

// htmlToText flattens tables into one comma-joined line per row, then
// appends the remaining body text. The comma separators let tabular HTML
// flow through the structured line rule.
func htmlToText(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			if text := util.NormalizeSpaces(cell.Text()); text != "" {
				cells = append(cells, text)
			}
		})
		if len(cells) > 0 {
			b.WriteString(strings.Join(cells, ", "))
			b.WriteString("\n")
		}
	})

	doc.Find("table").Remove()
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = util.NormalizeSpaces(line); line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
