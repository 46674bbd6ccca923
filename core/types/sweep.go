// Package types - Sweep configuration and results
package types

import (
	"math"

	"oresweep/internal/errors"
)

// Default sweep parameters
const (
	// DefaultVariation is the default perturbation range (±20%)
	DefaultVariation = 0.20

	// DefaultSteps is the default step count per direction
	DefaultSteps = 5
)

// SweepConfig holds the perturbation parameters for one sensitivity sweep
type SweepConfig struct {
	// Variation is the symmetric perturbation range as a fraction (0.20 = ±20%)
	Variation float64 `json:"variation"`

	// Steps is the number of perturbation steps in each direction;
	// the resulting grid is (2*Steps+1) square
	Steps int `json:"steps"`
}

// DefaultSweepConfig returns the process-wide default sweep parameters
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Variation: DefaultVariation,
		Steps:     DefaultSteps,
	}
}

// GridSize returns the matrix dimension produced by this config
func (c SweepConfig) GridSize() int {
	return 2*c.Steps + 1
}

// Validate checks the sweep parameters
func (c SweepConfig) Validate() error {
	if c.Steps < 1 {
		return errors.Validationf("sweep steps must be at least 1, got %d", c.Steps)
	}
	if math.IsNaN(c.Variation) || math.IsInf(c.Variation, 0) {
		return errors.Validation("sweep variation must be a finite number")
	}
	if c.Variation < 0 {
		return errors.Validationf("sweep variation must not be negative, got %g", c.Variation)
	}
	return nil
}

// SensitivityResult holds the two derived matrices and their shared axis labels.
// Row index i follows the capex-variation axis, column index j the
// ounces-variation axis. Cells that would require division by zero hold NaN.
type SensitivityResult struct {
	// AmortizationMatrix is capexVariant/ounceVariant in $/ounce
	AmortizationMatrix [][]float64 `json:"amortization_matrix"`

	// ExpenseMatrix is amortization rate times ounces mined, in dollars
	ExpenseMatrix [][]float64 `json:"expense_matrix"`

	// AxisLabels annotate both axes of both matrices, one per sweep step
	AxisLabels []string `json:"axis_labels"`
}

// GridSize returns the matrix dimension
func (r *SensitivityResult) GridSize() int {
	return len(r.AxisLabels)
}
