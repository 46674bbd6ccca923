// Package ui - Interactive batch runner with live progress
package ui

import (
	"time"

	"oresweep/core/batch"
	"oresweep/core/types"
)

// BatchRunner narrates a sensitivity batch on the terminal as it runs
type BatchRunner struct {
	w *Writer
}

// NewBatchRunner creates a runner
func NewBatchRunner(w *Writer) *BatchRunner {
	return &BatchRunner{w: w}
}

// Run executes the batch, printing one status line per project as it
// completes. Verbose mode adds the input figures and artifact paths.
func (r *BatchRunner) Run(runner *batch.Runner, records []types.ProjectRecord, cfg types.SweepConfig) (*batch.Report, time.Duration, error) {
	start := time.Now()

	r.w.Println("\nProcessing %d projects from the input file...", len(records))
	r.w.Println("")

	report, err := runner.Run(records, cfg, func(o *batch.Outcome) {
		if o.Failed() {
			r.w.Error("%s: %v", o.Record.Name, o.Err)
			return
		}
		r.w.Success("%s (%d artifacts)", o.Record.Name, len(o.Artifacts))
		r.w.Debug("Future Capex: %s", Money(o.Record.FutureCapex))
		r.w.Debug("LOM Ounces: %s", Count(o.Record.LOMOunces))
		r.w.Debug("Ounces Mined: %s", Count(o.Record.OuncesMined))
		for _, artifact := range o.Artifacts {
			r.w.Debug("saved %s", artifact)
		}
	})
	if err != nil {
		return nil, 0, err
	}

	return report, time.Since(start), nil
}

// DisplaySummary renders the closing summary of a batch run
func (r *BatchRunner) DisplaySummary(report *batch.Report, outputDir string, skippedRows int, elapsed time.Duration) {
	s := r.w.NewRunSummary()
	s.RunID = report.RunID
	s.Projects = len(report.Outcomes)
	s.Succeeded = report.Succeeded()
	s.Failed = report.Failed()
	s.Artifacts = report.ArtifactCount()
	s.SkippedRows = skippedRows
	s.OutputDir = outputDir
	s.Duration = elapsed
	s.Render()
}
