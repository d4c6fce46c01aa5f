package decode

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"estimator/internal/util"
)

// xlsxToRows reads the first sheet that carries any rows. Workbooks with an
// intervention table per sheet are rare enough that the first populated
// sheet is the right guess.
func xlsxToRows(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}

		out := [][]string{}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			empty := true
			for _, c := range row {
				c = util.NormalizeSpaces(c)
				if c != "" {
					empty = false
				}
				cells = append(cells, c)
			}
			if !empty {
				out = append(out, cells)
			}
		}
		if len(out) > 0 {
			return out, nil
		}
	}
	return nil, nil
}
