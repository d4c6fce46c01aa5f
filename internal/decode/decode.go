// Package decode turns uploaded report files into plain text or tabular
// rows for the extraction pipeline. Decoders degrade to empty output on
// undecodable bytes; the pipeline tolerates empty input, so a broken file
// becomes an empty estimate rather than an error page.
package decode

import (
	"path/filepath"
	"strings"

	"estimator/internal"
)

// Decoded carries either plain text (free-form sources) or rows (XLSX).
// CSV stays as text; the tabular line parser owns its delimiter handling.
type Decoded struct {
	Source internal.TextSource
	Text   string
	Rows   [][]string
}

// Tabular reports whether the content should take the strict row-based
// parse path instead of the heuristic text pipeline.
func (d Decoded) Tabular() bool {
	return d.Source == internal.SourceCSV || d.Source == internal.SourceXLSX
}

func File(filename string, content []byte) Decoded {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := pdfToText(content)
		if err != nil {
			text = ""
		}
		return Decoded{Source: internal.SourcePDF, Text: text}
	case ".docx":
		text, err := docxToText(content)
		if err != nil {
			text = ""
		}
		return Decoded{Source: internal.SourceDOCX, Text: text}
	case ".html", ".htm":
		text, err := htmlToText(content)
		if err != nil {
			text = ""
		}
		return Decoded{Source: internal.SourceHTML, Text: text}
	case ".csv":
		return Decoded{Source: internal.SourceCSV, Text: string(content)}
	case ".xlsx":
		rows, err := xlsxToRows(content)
		if err != nil {
			rows = nil
		}
		return Decoded{Source: internal.SourceXLSX, Rows: rows}
	default:
		return Decoded{Source: internal.SourcePlainText, Text: string(content)}
	}
}
