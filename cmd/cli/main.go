// Package main is the entry point for the oresweep CLI.
package main

import (
	"os"

	"oresweep/cmd/cli/cmd"
	"oresweep/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
