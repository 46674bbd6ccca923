package ui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"oresweep/core/batch"
	"oresweep/core/types"
)

// stubExporter returns one artifact path per project and can be told to
// fail for a specific project name.
type stubExporter struct {
	failFor string
}

func (s *stubExporter) Name() string { return "stub" }

func (s *stubExporter) Export(rec types.ProjectRecord, res *types.SensitivityResult, dir string) ([]string, error) {
	if rec.Name == s.failFor {
		return nil, fmt.Errorf("no space left")
	}
	return []string{filepath.Join(dir, rec.Name+".out")}, nil
}

// TestBatchRunnerNarratesOutcomes tests the per-project status lines and
// the report handed back.
func TestBatchRunnerNarratesOutcomes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	records := []types.ProjectRecord{
		{Name: "Aurora", FutureCapex: 1_000_000, LOMOunces: 10_000, OuncesMined: 500},
		{Name: "Borealis", FutureCapex: 2_500_000, LOMOunces: 40_000, OuncesMined: 1_200},
	}
	runner := batch.NewRunner(t.TempDir(), &stubExporter{failFor: "Borealis"})

	report, _, err := NewBatchRunner(w).Run(runner, records, types.DefaultSweepConfig())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Succeeded() != 1 || report.Failed() != 1 {
		t.Fatalf("report = %d succeeded / %d failed, want 1/1", report.Succeeded(), report.Failed())
	}

	out := buf.String()
	if !strings.Contains(out, "Processing 2 projects from the input file...") {
		t.Errorf("missing batch opening line:\n%s", out)
	}
	if !strings.Contains(out, "Aurora (1 artifacts)") {
		t.Errorf("missing success line for Aurora:\n%s", out)
	}
	if !strings.Contains(out, "Borealis") || !strings.Contains(out, "no space left") {
		t.Errorf("missing failure line for Borealis:\n%s", out)
	}
}

// TestBatchRunnerVerboseFigures tests that verbose mode adds the input
// figures and artifact paths under each status line.
func TestBatchRunnerVerboseFigures(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.SetVerbosity(2)

	records := []types.ProjectRecord{
		{Name: "Aurora", FutureCapex: 1_250_000, LOMOunces: 50_000, OuncesMined: 500},
	}
	runner := batch.NewRunner(t.TempDir(), &stubExporter{})

	if _, _, err := NewBatchRunner(w).Run(runner, records, types.DefaultSweepConfig()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Future Capex: $1,250,000.00",
		"LOM Ounces: 50,000",
		"Ounces Mined: 500",
		"Aurora.out",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

// TestDisplaySummary tests the report fields flowing into the closing
// summary.
func TestDisplaySummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	records := []types.ProjectRecord{
		{Name: "Aurora", FutureCapex: 1_000_000, LOMOunces: 10_000, OuncesMined: 500},
	}
	runner := batch.NewRunner(t.TempDir(), &stubExporter{})
	display := NewBatchRunner(w)

	report, elapsed, err := display.Run(runner, records, types.DefaultSweepConfig())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	display.DisplaySummary(report, "/data/results", 2, elapsed)

	out := buf.String()
	for _, want := range []string{
		"1 of 1 projects",
		"Run ID: " + report.RunID,
		"Output: /data/results",
		"2 input rows skipped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
