package diagfmt

import (
	"strings"
	"testing"

	"graphite/internal/graph"
	"graphite/internal/source"
)

func TestFormatProgramPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("plot.gp", []byte("f(x) = x + 1\n\nsin(x\n"))
	prog := graph.Compile(fs.Get(id), graph.Options{})

	var sb strings.Builder
	if err := FormatProgramPretty(&sb, prog); err != nil {
		t.Fatalf("FormatProgramPretty: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"definition",
		"f(x) = (x+1)",
		"empty",
		"error",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatProgramJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("plot.gp", []byte("#red y = 2 * x\n"))
	prog := graph.Compile(fs.Get(id), graph.Options{})

	var sb strings.Builder
	if err := FormatProgramJSON(&sb, prog); err != nil {
		t.Fatalf("FormatProgramJSON: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		`"kind": "definition"`,
		`"name": "y"`,
		`"red"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeLineUses(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("plot.gp", []byte("g(a) = sin(a) + y\n(cos(t),sin(t))[t,0,2*pi]\n"))
	prog := graph.Compile(fs.Get(id), graph.Options{})

	def := describeLine(0, prog.Lines[0])
	if got, want := strings.Join(def.Uses, " "), "+ sin y"; got != want {
		t.Errorf("definition uses = %q, want %q", got, want)
	}

	pp := describeLine(1, prog.Lines[1])
	if got, want := strings.Join(pp.Uses, " "), "cos sin * pi"; got != want {
		t.Errorf("plot uses = %q, want %q", got, want)
	}
}
