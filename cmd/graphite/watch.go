package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"graphite/internal/driver"
	"graphite/internal/graph"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file.gp|->",
	Short: "Re-evaluate a plot program whenever it changes",
	Long:  `Watch keeps evaluating a plot program. Given a file, every change on disk triggers recompilation and the per-line results are printed again. Given -, each line read from stdin is appended to the program and the whole program is re-evaluated`,
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("poll", 500*time.Millisecond, "how often to check the file for changes")
	watchCmd.Flags().Int("samples", 0, "points per curve; defaults to graphite.toml or 1000")
	watchCmd.Flags().Float64("xmin", 0, "left edge of the x-axis window")
	watchCmd.Flags().Float64("xmax", 0, "right edge of the x-axis window")
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	poll, err := cmd.Flags().GetDuration("poll")
	if err != nil {
		return fmt.Errorf("failed to get poll flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	onRun := func(result *driver.PlotResult) error {
		printDiagnostics(cmd, result.Bag, result.FileSet)
		printRun(result)
		return nil
	}

	if filePath == "-" {
		if !quiet {
			fmt.Fprintln(os.Stderr, "reading program from stdin (interrupt to stop)")
		}
		return driver.WatchReader(ctx, os.Stdin, opts, onRun)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "watching %s (interrupt to stop)\n", filePath)
	}
	return driver.Watch(ctx, filePath, opts, poll, onRun)
}

func printRun(result *driver.PlotResult) {
	fmt.Printf("--- %s\n", time.Now().Format("15:04:05"))
	for i, line := range result.Result.Lines {
		status := describeRunLine(line)
		if status == "" {
			continue
		}
		fmt.Printf("%3d: %s\n", i+1, status)
	}
}

func describeRunLine(line graph.LineResult) string {
	switch {
	case line.Err != nil:
		return "error: " + line.Err.Error()
	case line.Hidden:
		return "hidden"
	case line.Samples != nil:
		return fmt.Sprintf("curve, %d points", len(line.Samples.X))
	case line.Direct != "":
		return "= " + line.Direct
	default:
		return ""
	}
}
