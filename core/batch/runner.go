// Package batch runs the sensitivity sweep over a sequence of project
// records and dispatches each result to the export collaborators.
//
// Execution is sequential and synchronous: one project is fully processed
// before the next begins, in input order, with exactly one attempt per
// record. A failure while processing one record never aborts the rest.
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oresweep/core/sweep"
	"oresweep/core/types"
	"oresweep/internal/errors"
	"oresweep/internal/logging"
)

// Exporter writes per-project artifacts derived from one sensitivity result
type Exporter interface {
	// Name identifies the exporter in logs and failure messages
	Name() string

	// Export writes this exporter's artifacts into dir and returns their paths
	Export(rec types.ProjectRecord, res *types.SensitivityResult, dir string) ([]string, error)
}

// Runner executes sensitivity sweeps for a batch of projects
type Runner struct {
	outputDir string
	exporters []Exporter
}

// NewRunner creates a batch runner writing below outputDir
func NewRunner(outputDir string, exporters ...Exporter) *Runner {
	return &Runner{
		outputDir: outputDir,
		exporters: exporters,
	}
}

// Run processes every record in input order and returns the collected
// outcomes. The sweep config is validated once up front; an invalid config
// is the only fatal error, everything after that is isolated per project.
// onOutcome, when non-nil, observes each outcome as it completes.
func (r *Runner) Run(records []types.ProjectRecord, cfg types.SweepConfig, onOutcome func(*Outcome)) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    uuid.NewString(),
		Outcomes: make([]Outcome, 0, len(records)),
	}
	log := logging.With(zap.String("run_id", report.RunID))

	log.Info("starting sensitivity batch",
		zap.Int("projects", len(records)),
		zap.Float64("variation", cfg.Variation),
		zap.Int("steps", cfg.Steps),
		zap.String("output_dir", r.outputDir))

	for _, rec := range records {
		outcome := r.runOne(rec, cfg, log)
		report.Outcomes = append(report.Outcomes, outcome)
		if onOutcome != nil {
			onOutcome(&report.Outcomes[len(report.Outcomes)-1])
		}
	}

	log.Info("sensitivity batch finished",
		zap.Int("succeeded", report.Succeeded()),
		zap.Int("failed", report.Failed()))

	return report, nil
}

// runOne gives a single record its one attempt
func (r *Runner) runOne(rec types.ProjectRecord, cfg types.SweepConfig, log *zap.Logger) Outcome {
	outcome := Outcome{Record: rec}

	dir := filepath.Join(r.outputDir, rec.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		outcome.Err = errors.Export(rec.Name, err)
		log.Error("project failed",
			zap.String("project", rec.Name),
			zap.Error(outcome.Err))
		return outcome
	}

	outcome.Result = sweep.Run(rec.FutureCapex, rec.LOMOunces, rec.OuncesMined, cfg)

	for _, exp := range r.exporters {
		artifacts, err := exp.Export(rec, outcome.Result, dir)
		outcome.Artifacts = append(outcome.Artifacts, artifacts...)
		if err != nil {
			outcome.Err = errors.Export(rec.Name, fmt.Errorf("%s: %w", exp.Name(), err))
			log.Error("project failed",
				zap.String("project", rec.Name),
				zap.String("exporter", exp.Name()),
				zap.Error(err))
			return outcome
		}
	}

	log.Info("project processed",
		zap.String("project", rec.Name),
		zap.Int("artifacts", len(outcome.Artifacts)))

	return outcome
}
