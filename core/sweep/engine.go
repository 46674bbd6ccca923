// Package sweep implements the sensitivity grid engine.
//
// The engine is a pure function: three scalar inputs plus a SweepConfig map
// to two square matrices and their shared axis labels. Everything downstream
// (workbook sheets, heatmap images) is a direct rendering of this output.
package sweep

import (
	"math"
	"strconv"

	"oresweep/core/types"
)

// Fractions returns the 2*steps+1 evenly spaced perturbation fractions over
// the closed interval [-variation, +variation].
//
// Each fraction is derived independently as variation*(k-steps)/steps.
// Accumulating a step increment instead drifts: for the default config the
// +4% slot lands on 0.03999..., and its truncated label reads "3%".
func Fractions(variation float64, steps int) []float64 {
	n := 2*steps + 1
	fractions := make([]float64, n)
	for k := range fractions {
		fractions[k] = variation * float64(k-steps) / float64(steps)
	}
	fractions[0] = -variation
	fractions[steps] = 0
	fractions[n-1] = variation
	return fractions
}

// Labels renders perturbation fractions as integer percent strings.
// The conversion truncates toward zero, not half-up; workbook headers and
// heatmap ticks key on these exact strings.
func Labels(fractions []float64) []string {
	labels := make([]string, len(fractions))
	for k, f := range fractions {
		labels[k] = strconv.Itoa(int(f*100)) + "%"
	}
	return labels
}

// Run performs the sensitivity sweep for one project.
//
// Matrix row i follows the capex variants, column j the ounce variants.
// A zero ounce variant makes the amortization cell NaN instead of failing
// the sweep; the expense matrix inherits the NaN through multiplication.
// Run never fails: config validity is checked by the caller via
// cfg.Validate() before the batch starts.
func Run(baseCapex, baseOunces, ouncesMined float64, cfg types.SweepConfig) *types.SensitivityResult {
	fractions := Fractions(cfg.Variation, cfg.Steps)
	n := len(fractions)

	capexVariants := make([]float64, n)
	ounceVariants := make([]float64, n)
	for k, f := range fractions {
		capexVariants[k] = baseCapex * (1 + f)
		ounceVariants[k] = baseOunces * (1 + f)
	}

	amortization := make([][]float64, n)
	expense := make([][]float64, n)
	for i := 0; i < n; i++ {
		amortization[i] = make([]float64, n)
		expense[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if ounceVariants[j] == 0 {
				amortization[i][j] = math.NaN()
			} else {
				amortization[i][j] = capexVariants[i] / ounceVariants[j]
			}
			expense[i][j] = amortization[i][j] * ouncesMined
		}
	}

	return &types.SensitivityResult{
		AmortizationMatrix: amortization,
		ExpenseMatrix:      expense,
		AxisLabels:         Labels(fractions),
	}
}
