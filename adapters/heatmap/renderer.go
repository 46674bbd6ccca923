// Package heatmap renders the two annotated sensitivity heatmaps of a
// project as PNG images.
package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"oresweep/core/types"
)

// Axis captions shared by both heatmaps
const (
	xAxisLabel = "LOM Ounces Variation"
	yAxisLabel = "Future Capex Variation"
)

// nanFill is the color of cells whose value is undefined
var nanFill = color.Gray{Y: 0xd9}

var printer = message.NewPrinter(language.English)

// Renderer draws the amortization and expense heatmaps for one project
type Renderer struct{}

// NewRenderer creates the heatmap renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Name identifies the exporter in logs and failure messages
func (r *Renderer) Name() string {
	return "heatmap"
}

// Export writes <project>_amortization_sensitivity.png and
// <project>_expense_sensitivity.png into dir. Every cell is annotated
// with its two-decimal value; undefined cells read "NaN" on a gray fill.
func (r *Renderer) Export(rec types.ProjectRecord, res *types.SensitivityResult, dir string) ([]string, error) {
	var artifacts []string

	amortPath := filepath.Join(dir, fmt.Sprintf("%s_amortization_sensitivity.png", rec.Name))
	amortTitle := fmt.Sprintf("Amortization Rate Sensitivity Analysis: %s ($/ounce)", rec.Name)
	if err := renderGrid(res.AmortizationMatrix, res.AxisLabels, amortTitle, amortPath); err != nil {
		return artifacts, err
	}
	artifacts = append(artifacts, amortPath)

	expensePath := filepath.Join(dir, fmt.Sprintf("%s_expense_sensitivity.png", rec.Name))
	expenseTitle := fmt.Sprintf("Expected Expense Sensitivity: %s (%s Ounces Mined)",
		rec.Name, printer.Sprintf("%.0f", rec.OuncesMined))
	if err := renderGrid(res.ExpenseMatrix, res.AxisLabels, expenseTitle, expensePath); err != nil {
		return artifacts, err
	}
	artifacts = append(artifacts, expensePath)

	return artifacts, nil
}

// renderGrid draws one matrix as an annotated heatmap and saves it
func renderGrid(matrix [][]float64, labels []string, title, path string) error {
	h := plotter.NewHeatMap(&matrixGrid{matrix: matrix}, yellowGreenBlue(paletteSize))
	h.NaN = nanFill
	h.Min, h.Max = matrixRange(matrix)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.X.Tick.Marker = plot.ConstantTicks(axisTicks(labels))
	p.Y.Tick.Marker = plot.ConstantTicks(axisTicks(labels))
	p.Add(h)

	annotations, err := cellAnnotations(matrix)
	if err != nil {
		return err
	}
	p.Add(annotations)

	return p.Save(12*vg.Inch, 10*vg.Inch, path)
}

// matrixGrid adapts a row-major matrix to the plotter grid interface.
// Row i is drawn at y=i, so the lowest capex variant sits at the bottom.
type matrixGrid struct {
	matrix [][]float64
}

func (g *matrixGrid) Dims() (c, r int) {
	if len(g.matrix) == 0 {
		return 0, 0
	}
	return len(g.matrix[0]), len(g.matrix)
}

func (g *matrixGrid) Z(c, r int) float64 { return g.matrix[r][c] }

func (g *matrixGrid) X(c int) float64 { return float64(c) }

func (g *matrixGrid) Y(r int) float64 { return float64(r) }

// matrixRange finds the color scale bounds, ignoring undefined cells. A
// degenerate range is widened so the palette lookup stays finite.
func matrixRange(matrix [][]float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range matrix {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if min > max { // every cell undefined
		return 0, 1
	}
	if min == max {
		return min - 0.5, max + 0.5
	}
	return min, max
}

// axisTicks puts one labeled tick on each row and column center
func axisTicks(labels []string) []plot.Tick {
	ticks := make([]plot.Tick, len(labels))
	for i, label := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	return ticks
}

// cellAnnotations centers each cell's formatted value on the cell
func cellAnnotations(matrix [][]float64) (*plotter.Labels, error) {
	var xys plotter.XYs
	var texts []string
	for i, row := range matrix {
		for j, v := range row {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(i)})
			texts = append(texts, fmt.Sprintf("%.2f", v))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}
