// Package cmd - profiles command
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"oresweep/core/profiles"
	"oresweep/core/ui"
	"oresweep/internal/config"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the sweep profiles in the profiles file",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func init() {
	profilesCmd.Flags().StringVar(&profilesFile, "profiles-file", "", "HCL file with sweep profiles")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	w := ui.NewWriter(os.Stdout, noColor || cfg.Output.NoColor)

	path := profilesFile
	if path == "" {
		path = cfg.Profiles.File
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		w.Info("no profiles file at %s", path)
		return nil
	}

	set, err := profiles.NewLoader().Load(path)
	if err != nil {
		return err
	}

	w.Header("Sweep Profiles")
	table := w.NewTable("Name", "Variation", "Steps", "Grid")
	for _, name := range set.Names() {
		p, err := set.Lookup(name)
		if err != nil {
			return err
		}
		grid := p.Config().GridSize()
		table.AddRow(name,
			fmt.Sprintf("±%.0f%%", p.Variation*100),
			strconv.Itoa(p.Steps),
			fmt.Sprintf("%dx%d", grid, grid))
	}
	table.Render()

	w.Println("")
	w.Println("%d profiles from %s", set.Len(), path)
	return nil
}
