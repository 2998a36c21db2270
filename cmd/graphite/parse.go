package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graphite/internal/diagfmt"
	"graphite/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.gp",
	Short: "Compile a plot file and show how each line was classified",
	Long:  `Parse compiles every line of a plot file into a definition, a parametric plot, or an empty line, without evaluating anything`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		return diagfmt.FormatProgramPretty(os.Stdout, result.Program)
	case "json":
		return diagfmt.FormatProgramJSON(os.Stdout, result.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
