// Package xlsx reads the project input workbook and writes the
// per-project result workbooks.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"oresweep/core/types"
	"oresweep/internal/errors"
	"oresweep/internal/logging"
)

// SkippedRow records one input row dropped during cleaning
type SkippedRow struct {
	// Row is the 1-based spreadsheet row number
	Row    int
	Reason string
}

// ReadResult carries the surviving records and the rows dropped on the way
type ReadResult struct {
	Records []types.ProjectRecord
	Skipped []SkippedRow
}

// ReadProjects loads the first worksheet of the workbook at path and
// returns one record per valid row. Header row 1 must contain every
// required column; a row with an empty project name or an unparseable
// numeric cell is skipped, and zero surviving rows is an error.
func ReadProjects(path string) (*ReadResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Parsing(fmt.Sprintf("opening workbook %s", path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Validation("workbook contains no worksheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Parsing(fmt.Sprintf("reading worksheet %s", sheet), err)
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	colIndex, err := requireColumns(header)
	if err != nil {
		return nil, err
	}

	result := &ReadResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		rec, reason := parseRow(row, colIndex)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedRow{Row: rowNum, Reason: reason})
			logging.Warn("skipping input row",
				zap.String("file", path),
				zap.Int("row", rowNum),
				zap.String("reason", reason))
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if len(result.Records) == 0 {
		return nil, errors.Validation("no valid data rows found after cleaning")
	}

	logging.Debug("input workbook loaded",
		zap.String("file", path),
		zap.Int("projects", len(result.Records)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// requireColumns maps each required column name to its header index
func requireColumns(header []string) (map[string]int, error) {
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range types.RequiredColumns() {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Validationf("missing required columns in the input file: %s", strings.Join(missing, ", "))
	}

	return colIndex, nil
}

// parseRow converts one data row into a record; a non-empty reason means
// the row must be skipped
func parseRow(row []string, colIndex map[string]int) (types.ProjectRecord, string) {
	name := getCell(row, colIndex[types.ColumnProject])
	if name == "" {
		return types.ProjectRecord{}, "empty Project"
	}

	rec := types.ProjectRecord{Name: name}
	fields := []struct {
		column string
		dst    *float64
	}{
		{types.ColumnFutureCapex, &rec.FutureCapex},
		{types.ColumnLOMOunces, &rec.LOMOunces},
		{types.ColumnOuncesMined, &rec.OuncesMined},
	}
	for _, field := range fields {
		raw := getCell(row, colIndex[field.column])
		v, err := parseNumeric(raw)
		if err != nil {
			return types.ProjectRecord{}, fmt.Sprintf("%s %q is not numeric", field.column, raw)
		}
		*field.dst = v
	}

	return rec, ""
}

// parseNumeric parses a cell through decimal so stray text and grouped
// digits are rejected rather than silently misread
func parseNumeric(cell string) (float64, error) {
	if cell == "" {
		return 0, fmt.Errorf("empty cell")
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
