package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"graphite/internal/config"
	"graphite/internal/driver"
	"graphite/internal/export"
	"graphite/internal/graph"
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] file.gp",
	Short: "Evaluate a plot file and export sample data",
	Long:  `Plot compiles and evaluates every line of a plot file over the x-axis domain and writes the resulting curves as JSON or msgpack`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().String("format", "", "export format (json|msgpack); defaults to graphite.toml or json")
	plotCmd.Flags().String("out", "", "write output to file instead of stdout")
	plotCmd.Flags().Int("samples", 0, "points per curve; defaults to graphite.toml or 1000")
	plotCmd.Flags().Float64("xmin", 0, "left edge of the x-axis window")
	plotCmd.Flags().Float64("xmax", 0, "right edge of the x-axis window")
}

func runPlot(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	opts, format, err := plotSettings(cmd, filePath)
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiagnostics

	result, err := driver.Plot(filePath, opts)
	if err != nil {
		return fmt.Errorf("plotting failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	out := io.Writer(os.Stdout)
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, export.FromResult(result.Result), format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		printTimings(os.Stderr, result.Timing)
	}
	return nil
}

// plotSettings собирает настройки из graphite.toml и флагов;
// флаги имеют приоритет над манифестом.
func plotSettings(cmd *cobra.Command, filePath string) (driver.PlotOptions, string, error) {
	cfg, _, err := config.Load(filepath.Dir(filePath))
	if err != nil {
		return driver.PlotOptions{}, "", fmt.Errorf("failed to load config: %w", err)
	}

	opts := driver.PlotOptions{
		Samples:  cfg.Plot.Samples,
		Interval: graph.Interval{S: cfg.Plot.XMin, E: cfg.Plot.XMax},
	}
	if cmd.Flags().Changed("samples") {
		opts.Samples, _ = cmd.Flags().GetInt("samples")
	}
	if cmd.Flags().Changed("xmin") {
		opts.Interval.S, _ = cmd.Flags().GetFloat64("xmin")
	}
	if cmd.Flags().Changed("xmax") {
		opts.Interval.E, _ = cmd.Flags().GetFloat64("xmax")
	}
	if opts.Interval.S >= opts.Interval.E {
		return driver.PlotOptions{}, "", fmt.Errorf("invalid x-axis window [%g, %g]", opts.Interval.S, opts.Interval.E)
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	switch format {
	case "json", "msgpack":
	default:
		return driver.PlotOptions{}, "", fmt.Errorf("unknown format: %s", format)
	}

	return opts, format, nil
}
