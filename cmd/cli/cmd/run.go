// Package cmd - run command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"oresweep/adapters/heatmap"
	"oresweep/adapters/xlsx"
	"oresweep/core/batch"
	"oresweep/core/profiles"
	"oresweep/core/types"
	"oresweep/core/ui"
	"oresweep/internal/config"
	"oresweep/internal/errors"
)

var (
	inputFile    string
	outputDir    string
	variation    float64
	steps        int
	profileName  string
	profilesFile string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sensitivity batch over an input workbook",
	Long: `Read project rows from an Excel workbook, sweep future capex and LOM
ounces over the configured variation range, and write one result workbook
plus two annotated heatmaps per project.

Paths not given as flags are asked for interactively.

Examples:
  oresweep run --input projects.xlsx --output ./results
  oresweep run --input projects.xlsx --variation 0.30 --steps 3
  oresweep run --input projects.xlsx --profile aggressive`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input workbook (prompts when omitted)")
	runCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (prompts when omitted)")
	addSweepFlags(runCmd)
}

// addSweepFlags binds the sweep parameter flags shared by run and preview
func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&variation, "variation", types.DefaultVariation, "variation fraction, e.g. 0.20 for ±20%")
	cmd.Flags().IntVar(&steps, "steps", types.DefaultSteps, "increments on each side of the base value")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "named sweep profile from the profiles file")
	cmd.Flags().StringVar(&profilesFile, "profiles-file", "", "HCL file with sweep profiles")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	w := ui.NewWriter(os.Stdout, noColor || cfg.Output.NoColor)
	if verbose {
		w.SetVerbosity(2)
	}

	w.Println("Batch Sensitivity Analysis for Amortization Rate and Expected Expenses")
	w.Println("--------------------------------------------------------------------")

	sweepCfg, err := resolveSweepConfig(cmd, cfg)
	if err != nil {
		return err
	}

	prompter := ui.NewPrompter(w, cmd.InOrStdin())

	input := inputFile
	if input == "" {
		path, ok := prompter.InputFilePath()
		if !ok {
			w.Println("Operation cancelled.")
			return nil
		}
		input = path
	} else if _, err := os.Stat(input); err != nil {
		return errors.Validationf("input file does not exist: %s", input)
	}

	spinner := w.NewSpinner("Reading input workbook...")
	spinner.Start()
	read, err := xlsx.ReadProjects(input)
	spinner.Stop(err == nil)
	if err != nil {
		return err
	}
	for _, skip := range read.Skipped {
		w.Warning("row %d skipped: %s", skip.Row, skip.Reason)
	}

	outDir, ok, err := resolveOutputDir(prompter)
	if err != nil {
		return err
	}
	if !ok {
		w.Println("Operation cancelled.")
		return nil
	}

	runner := batch.NewRunner(outDir, xlsx.NewExporter(), heatmap.NewRenderer())
	display := ui.NewBatchRunner(w)
	report, elapsed, err := display.Run(runner, read.Records, sweepCfg)
	if err != nil {
		return err
	}

	w.Println("\nBatch processing completed!")
	display.DisplaySummary(report, outDir, len(read.Skipped), elapsed)

	return nil
}

// resolveOutputDir picks the output directory: the --output flag wins, then
// the configured default, then the interactive prompt. ok is false when the
// user cancelled.
func resolveOutputDir(prompter *ui.Prompter) (dir string, ok bool, err error) {
	if outputDir != "" {
		return outputDir, true, os.MkdirAll(outputDir, 0755)
	}
	if configured := config.Get().Output.Directory; configured != "" {
		return configured, true, os.MkdirAll(configured, 0755)
	}
	dir, ok = prompter.OutputDirPath()
	return dir, ok, nil
}

// resolveSweepConfig applies the sweep precedence: explicit flags beat a
// named profile, which beats the configured defaults.
func resolveSweepConfig(cmd *cobra.Command, cfg *config.Config) (types.SweepConfig, error) {
	sweepCfg := cfg.Sweep

	if profileName != "" {
		path := profilesFile
		if path == "" {
			path = cfg.Profiles.File
		}
		set, err := profiles.NewLoader().Load(path)
		if err != nil {
			return types.SweepConfig{}, err
		}
		p, err := set.Lookup(profileName)
		if err != nil {
			return types.SweepConfig{}, err
		}
		sweepCfg = p.Config()
	}

	if cmd.Flags().Changed("variation") {
		sweepCfg.Variation = variation
	}
	if cmd.Flags().Changed("steps") {
		sweepCfg.Steps = steps
	}

	if err := sweepCfg.Validate(); err != nil {
		return types.SweepConfig{}, err
	}
	return sweepCfg, nil
}
