package driver

import (
	"fmt"

	"graphite/internal/diag"
	"graphite/internal/graph"
	"graphite/internal/observ"
	"graphite/internal/source"
)

// PlotOptions управляет полным конвейером load → compile → execute.
type PlotOptions struct {
	// MaxDiagnostics ограничивает размер диагностического пакета.
	MaxDiagnostics int
	// Samples is the point count for both the x-axis domain and
	// parametric plots. Zero means graph.DefaultSamples.
	Samples int
	// Interval is the x-axis window; the zero value means the default
	// window.
	Interval graph.Interval
}

type PlotResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *graph.Program
	Result  *graph.Result
	Bag     *diag.Bag
	Timing  observ.Report
}

// Plot runs the whole pipeline over one file: load it, compile every line,
// and evaluate the program over the x-axis domain.
func Plot(filePath string, opts PlotOptions) (*PlotResult, error) {
	if opts.Samples <= 0 {
		opts.Samples = graph.DefaultSamples
	}
	iv := opts.Interval
	if iv.S == 0 && iv.E == 0 {
		iv = graph.DefaultInterval()
	}

	timer := observ.NewTimer()

	loadDone := timer.Phase("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		loadDone("failed")
		return nil, err
	}
	file := fs.Get(fileID)
	loadDone(filePath)

	bag := diag.NewBag(opts.MaxDiagnostics)

	compileDone := timer.Phase("compile")
	prog := graph.Compile(file, graph.Options{
		Samples:  opts.Samples,
		Reporter: &diag.BagReporter{Bag: bag},
	})
	compileDone(fmt.Sprintf("%d lines", len(prog.Lines)))

	executeDone := timer.Phase("execute")
	res := prog.Execute(iv.Domain(opts.Samples))
	executeDone(fmt.Sprintf("%d samples", opts.Samples))

	return &PlotResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Result:  res,
		Bag:     bag,
		Timing:  timer.Report(),
	}, nil
}

// PlotSource runs the compile and execute phases over in-memory source, for
// stdin-driven callers that have no file to load.
func PlotSource(name string, content []byte, opts PlotOptions) *PlotResult {
	if opts.Samples <= 0 {
		opts.Samples = graph.DefaultSamples
	}
	iv := opts.Interval
	if iv.S == 0 && iv.E == 0 {
		iv = graph.DefaultInterval()
	}

	timer := observ.NewTimer()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))

	bag := diag.NewBag(opts.MaxDiagnostics)

	compileDone := timer.Phase("compile")
	prog := graph.Compile(file, graph.Options{
		Samples:  opts.Samples,
		Reporter: &diag.BagReporter{Bag: bag},
	})
	compileDone(fmt.Sprintf("%d lines", len(prog.Lines)))

	executeDone := timer.Phase("execute")
	res := prog.Execute(iv.Domain(opts.Samples))
	executeDone(fmt.Sprintf("%d samples", opts.Samples))

	return &PlotResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Result:  res,
		Bag:     bag,
		Timing:  timer.Report(),
	}
}
