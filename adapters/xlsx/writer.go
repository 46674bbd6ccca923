package xlsx

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"oresweep/core/types"
)

// Sheet names of the result workbook
const (
	sheetAmortization = "Amortization Rates"
	sheetExpenses     = "Expected Expenses"
	sheetSummary      = "Input Summary"
)

// Exporter writes the three-sheet result workbook for one project
type Exporter struct{}

// NewExporter creates the workbook exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Name identifies the exporter in logs and failure messages
func (e *Exporter) Name() string {
	return "workbook"
}

// Export writes <project>_sensitivity_analysis.xlsx into dir: the
// amortization grid, the expense grid, and the input summary. Grid cells
// carry a two-decimal number format; undefined cells hold the string "NaN".
func (e *Exporter) Export(rec types.ProjectRecord, res *types.SensitivityResult, dir string) ([]string, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	numStyle, _ := f.NewStyle(&excelize.Style{
		NumFmt: 2, // 0.00
	})

	f.SetSheetName("Sheet1", sheetAmortization)
	if _, err := f.NewSheet(sheetExpenses); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, err
	}

	writeGrid(f, sheetAmortization, res.AxisLabels, res.AmortizationMatrix, headerStyle, numStyle)
	writeGrid(f, sheetExpenses, res.AxisLabels, res.ExpenseMatrix, headerStyle, numStyle)
	writeSummary(f, rec, headerStyle)

	path := filepath.Join(dir, fmt.Sprintf("%s_sensitivity_analysis.xlsx", rec.Name))
	if err := f.SaveAs(path); err != nil {
		return nil, err
	}

	return []string{path}, nil
}

// writeGrid lays one matrix out with its axis labels: A1 blank, labels
// across row 1 and down column A, data from B2.
func writeGrid(f *excelize.File, sheet string, labels []string, matrix [][]float64, headerStyle, numStyle int) {
	for j, label := range labels {
		cell, _ := excelize.CoordinatesToCellName(j+2, 1)
		f.SetCellValue(sheet, cell, label)
	}
	for i, label := range labels {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), label)
	}

	for i, row := range matrix {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+2, i+2)
			if math.IsNaN(v) {
				f.SetCellValue(sheet, cell, "NaN")
			} else {
				f.SetCellValue(sheet, cell, v)
			}
		}
	}

	n := len(labels)
	f.SetRowStyle(sheet, 1, 1, headerStyle)
	f.SetCellStyle(sheet, "A2", fmt.Sprintf("A%d", n+1), headerStyle)

	last, _ := excelize.CoordinatesToCellName(n+1, n+1)
	f.SetCellStyle(sheet, "B2", last, numStyle)

	lastCol, _ := excelize.ColumnNumberToName(n + 1)
	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", lastCol, 14)
}

// writeSummary lays the input figures out as Parameter/Value rows
func writeSummary(f *excelize.File, rec types.ProjectRecord, headerStyle int) {
	summary := [][]interface{}{
		{"Parameter", "Value"},
		{"Project", rec.Name},
		{"Future Capex", rec.FutureCapex},
		{"LOM Ounces", rec.LOMOunces},
		{"Ounces Mined", rec.OuncesMined},
	}

	for i, row := range summary {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(sheetSummary, cell, val)
		}
	}

	f.SetRowStyle(sheetSummary, 1, 1, headerStyle)
	f.SetColWidth(sheetSummary, "A", "A", 20)
	f.SetColWidth(sheetSummary, "B", "B", 25)
}
