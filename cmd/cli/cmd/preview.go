// Package cmd - preview command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oresweep/adapters/xlsx"
	"oresweep/core/sweep"
	"oresweep/core/ui"
	"oresweep/internal/config"
	"oresweep/internal/errors"
)

var (
	previewInput   string
	previewProject string
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print one project's sensitivity grids without writing files",
	Long: `Compute the sensitivity grids for a single project from the input
workbook and render them as terminal tables. Nothing is written to disk.

Examples:
  oresweep preview --input projects.xlsx
  oresweep preview --input projects.xlsx --project "North Pit" --steps 2`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "input workbook")
	previewCmd.Flags().StringVar(&previewProject, "project", "", "project name (default: first valid row)")
	previewCmd.MarkFlagRequired("input")
	addSweepFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	w := ui.NewWriter(os.Stdout, noColor || cfg.Output.NoColor)
	if verbose {
		w.SetVerbosity(2)
	}

	sweepCfg, err := resolveSweepConfig(cmd, cfg)
	if err != nil {
		return err
	}

	read, err := xlsx.ReadProjects(previewInput)
	if err != nil {
		return err
	}
	for _, skip := range read.Skipped {
		w.Warning("row %d skipped: %s", skip.Row, skip.Reason)
	}

	rec := read.Records[0]
	if previewProject != "" {
		found := false
		for _, r := range read.Records {
			if r.Name == previewProject {
				rec = r
				found = true
				break
			}
		}
		if !found {
			return errors.Validationf("project %q not found in %s", previewProject, previewInput)
		}
	}

	res := sweep.Run(rec.FutureCapex, rec.LOMOunces, rec.OuncesMined, sweepCfg)

	w.Header(fmt.Sprintf("Amortization Rate Sensitivity Analysis: %s ($/ounce)", rec.Name))
	renderGridTable(w, res.AxisLabels, res.AmortizationMatrix)

	w.Header(fmt.Sprintf("Expected Expense Sensitivity: %s (%s Ounces Mined)", rec.Name, ui.Count(rec.OuncesMined)))
	renderGridTable(w, res.AxisLabels, res.ExpenseMatrix)

	w.Header("Input Summary")
	summary := w.NewTable("Parameter", "Value")
	summary.AddRow("Project", rec.Name)
	summary.AddRow("Future Capex", ui.Money(rec.FutureCapex))
	summary.AddRow("LOM Ounces", ui.Count(rec.LOMOunces))
	summary.AddRow("Ounces Mined", ui.Count(rec.OuncesMined))
	summary.Render()

	return nil
}

// renderGridTable prints one matrix with its axis labels. Rows carry the
// capex variation, columns the ounce variation.
func renderGridTable(w *ui.Writer, labels []string, matrix [][]float64) {
	headers := make([]string, 0, len(labels)+1)
	headers = append(headers, `Capex \ Ounces`)
	headers = append(headers, labels...)

	table := w.NewTable(headers...)
	for i, row := range matrix {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, labels[i])
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%.2f", v))
		}
		table.AddRow(cells...)
	}
	table.Render()
}
