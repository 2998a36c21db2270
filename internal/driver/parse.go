package driver

import (
	"graphite/internal/diag"
	"graphite/internal/graph"
	"graphite/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *graph.Program
	Bag     *diag.Bag
}

// Parse loads and compiles a plot file without executing it. Per-line
// failures are collected in the bag; the returned program records them
// line by line.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	prog := graph.Compile(file, graph.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Bag:     bag,
	}, nil
}
