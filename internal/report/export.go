package report

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"estimator/internal"
)

func ExportXLSX(est internal.Estimate, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"name", "quantity", "clause", "unit_price", "total", "source"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rows := BuildRows(est)
	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Name)
		set(2, row.Quantity)
		set(3, row.Clause)
		set(4, derefFloat(row.UnitPrice))
		set(5, derefFloat(row.Total))
		set(6, derefString(row.Source))
	}

	totalRow := len(rows) + 2
	nameCell, _ := excelize.CoordinatesToCellName(1, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(5, totalRow)
	_ = f.SetCellValue(sheet, nameCell, "overall_total")
	_ = f.SetCellValue(sheet, valueCell, est.Overall)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
