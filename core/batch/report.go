package batch

import "oresweep/core/types"

// Outcome records what happened to a single project: the computed result,
// the artifact paths written before any failure, and the failure itself
// when one occurred. Result is nil only when the output directory could
// not be created.
type Outcome struct {
	Record    types.ProjectRecord
	Result    *types.SensitivityResult
	Artifacts []string
	Err       error
}

// Failed reports whether this project's run ended in an error
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Report aggregates the outcomes of one batch run
type Report struct {
	// RunID tags every log line and summary of this run
	RunID string

	// Outcomes holds one entry per input record, in input order
	Outcomes []Outcome
}

// Succeeded counts projects whose artifacts were all written
func (r *Report) Succeeded() int {
	n := 0
	for i := range r.Outcomes {
		if !r.Outcomes[i].Failed() {
			n++
		}
	}
	return n
}

// Failed counts projects that ended in an error
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// ArtifactCount totals the artifact paths written across all projects
func (r *Report) ArtifactCount() int {
	n := 0
	for i := range r.Outcomes {
		n += len(r.Outcomes[i].Artifacts)
	}
	return n
}
