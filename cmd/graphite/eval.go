package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"graphite/internal/driver"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <file.gp|->",
	Short: "Evaluate a plot file and print per-line results",
	Long:  `Eval compiles and evaluates a plot file (or stdin when the argument is -) and prints each line's result: a curve summary, a direct value, or an error. With --expr a single expression is evaluated instead`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringP("expr", "e", "", "evaluate one expression instead of a file")
	evalCmd.Flags().Int("samples", 0, "points per curve; defaults to graphite.toml or 1000")
	evalCmd.Flags().Float64("xmin", 0, "left edge of the x-axis window")
	evalCmd.Flags().Float64("xmax", 0, "right edge of the x-axis window")
}

func runEval(cmd *cobra.Command, args []string) error {
	if expr, _ := cmd.Flags().GetString("expr"); expr != "" {
		result, err := driver.EvalExpression(expr)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("expected a file argument, - for stdin, or --expr")
	}
	filePath := args[0]

	opts, _, err := plotSettings(cmd, filePath)
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiagnostics

	var result *driver.PlotResult
	if filePath == "-" {
		content, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result = driver.PlotSource("<stdin>", content, opts)
	} else {
		result, err = driver.Plot(filePath, opts)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	for i, line := range result.Result.Lines {
		status := describeRunLine(line)
		if status == "" {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%3d: %s\n", i+1, status)
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		printTimings(os.Stderr, result.Timing)
	}
	return nil
}
