package xlsx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"oresweep/internal/errors"
)

// writeInputWorkbook builds a throwaway workbook from literal rows.
func writeInputWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatal(err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestReadProjectsParsesRows tests that valid rows become records no
// matter how the required columns are ordered.
func TestReadProjectsParsesRows(t *testing.T) {
	path := writeInputWorkbook(t, [][]interface{}{
		{"Future_Capex", "Project", "Ounces_Mined", "LOM_Ounces"},
		{1000000.0, "Aurora", 500.0, 10000.0},
		{2500000.5, "Borealis", 1200.0, 40000.0},
	})

	got, err := ReadProjects(path)
	if err != nil {
		t.Fatalf("ReadProjects() error = %v", err)
	}

	if len(got.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", got.Skipped)
	}
	if len(got.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(got.Records))
	}

	first := got.Records[0]
	if first.Name != "Aurora" {
		t.Errorf("Records[0].Name = %q, want Aurora", first.Name)
	}
	if first.FutureCapex != 1000000 || first.LOMOunces != 10000 || first.OuncesMined != 500 {
		t.Errorf("Records[0] figures = %v/%v/%v, want 1000000/10000/500",
			first.FutureCapex, first.LOMOunces, first.OuncesMined)
	}
	if got.Records[1].FutureCapex != 2500000.5 {
		t.Errorf("Records[1].FutureCapex = %v, want 2500000.5", got.Records[1].FutureCapex)
	}
}

// TestReadProjectsSkipsInvalidRows tests the row-cleaning rules: empty
// project names and unparseable numeric cells drop the row with a reason,
// and the survivors keep their input order.
func TestReadProjectsSkipsInvalidRows(t *testing.T) {
	path := writeInputWorkbook(t, [][]interface{}{
		{"Project", "Future_Capex", "LOM_Ounces", "Ounces_Mined"},
		{"Aurora", 1000000.0, 10000.0, 500.0},
		{"", 2000000.0, 20000.0, 600.0},
		{"Cascade", "abc", 30000.0, 700.0},
		{"Denali", "1,000,000", 40000.0, 800.0},
		{"Elkhorn", 5000000.0, "", 900.0},
		{"Borealis", 2500000.0, 40000.0, 1200.0},
	})

	got, err := ReadProjects(path)
	if err != nil {
		t.Fatalf("ReadProjects() error = %v", err)
	}

	if len(got.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(got.Records))
	}
	if got.Records[0].Name != "Aurora" || got.Records[1].Name != "Borealis" {
		t.Errorf("surviving projects = %q, %q; want Aurora, Borealis",
			got.Records[0].Name, got.Records[1].Name)
	}

	wantSkips := []struct {
		row    int
		reason string
	}{
		{row: 3, reason: "empty Project"},
		{row: 4, reason: "Future_Capex"},
		{row: 5, reason: "Future_Capex"},
		{row: 6, reason: "LOM_Ounces"},
	}
	if len(got.Skipped) != len(wantSkips) {
		t.Fatalf("len(Skipped) = %d, want %d: %v", len(got.Skipped), len(wantSkips), got.Skipped)
	}
	for i, want := range wantSkips {
		skip := got.Skipped[i]
		if skip.Row != want.row {
			t.Errorf("Skipped[%d].Row = %d, want %d", i, skip.Row, want.row)
		}
		if !strings.Contains(skip.Reason, want.reason) {
			t.Errorf("Skipped[%d].Reason = %q, want mention of %q", i, skip.Reason, want.reason)
		}
	}
}

// TestReadProjectsMissingColumns tests that an incomplete header row is
// fatal and names every absent column.
func TestReadProjectsMissingColumns(t *testing.T) {
	path := writeInputWorkbook(t, [][]interface{}{
		{"Project", "Future_Capex"},
		{"Aurora", 1000000.0},
	})

	_, err := ReadProjects(path)
	if err == nil {
		t.Fatal("ReadProjects() error = nil, want missing-column error")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("error type = %v, want TypeValidation", err)
	}
	for _, col := range []string{"LOM_Ounces", "Ounces_Mined"} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error %q does not name missing column %s", err, col)
		}
	}
}

// TestReadProjectsNoValidRows tests that a workbook with no surviving
// rows aborts with the no-valid-data error.
func TestReadProjectsNoValidRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{
			name: "header only",
			rows: [][]interface{}{
				{"Project", "Future_Capex", "LOM_Ounces", "Ounces_Mined"},
			},
		},
		{
			name: "every row invalid",
			rows: [][]interface{}{
				{"Project", "Future_Capex", "LOM_Ounces", "Ounces_Mined"},
				{"Aurora", "not a number", 10000.0, 500.0},
				{"", 1000000.0, 10000.0, 500.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInputWorkbook(t, tt.rows)
			_, err := ReadProjects(path)
			if err == nil {
				t.Fatal("ReadProjects() error = nil, want no-valid-rows error")
			}
			if !strings.Contains(err.Error(), "no valid data rows") {
				t.Errorf("error = %q, want mention of no valid data rows", err)
			}
		})
	}
}

// TestReadProjectsMissingFile tests the open failure classification.
func TestReadProjectsMissingFile(t *testing.T) {
	_, err := ReadProjects(filepath.Join(t.TempDir(), "absent.xlsx"))
	if err == nil {
		t.Fatal("ReadProjects() error = nil, want open error")
	}
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("error type = %v, want TypeParsing", err)
	}
}
