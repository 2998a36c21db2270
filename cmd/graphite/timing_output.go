package main

import (
	"fmt"
	"io"

	"graphite/internal/observ"
)

func printTimings(out io.Writer, report observ.Report) {
	if out == nil {
		return
	}
	for _, phase := range report.Phases {
		fmt.Fprintf(out, "%s %.1f ms", phase.Name, phase.DurationMS)
		if phase.Note != "" {
			fmt.Fprintf(out, " (%s)", phase.Note)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "total %.1f ms\n", report.TotalMS)
}
