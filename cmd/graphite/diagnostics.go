package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"graphite/internal/diag"
	"graphite/internal/diagfmt"
	"graphite/internal/source"
)

// printDiagnostics выводит накопленную диагностику в stderr.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
		return
	}
	if diagFlag, _ := cmd.Root().PersistentFlags().GetString("diag"); diagFlag == "json" {
		max, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			Max:              max,
		}
		if err := diagfmt.WriteDiagnosticsJSON(os.Stderr, bag, fs, opts); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write diagnostics: %v\n", err)
		}
		return
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	opts := diagfmt.PrettyOpts{
		Color:     useColor,
		ShowNotes: true,
	}
	diagfmt.Pretty(os.Stderr, bag, fs, opts)
}
