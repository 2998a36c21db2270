package graph_test

import (
	"math"
	"strings"
	"testing"

	"graphite/internal/diag"
	"graphite/internal/graph"
	"graphite/internal/source"
	"graphite/internal/value"
)

func compile(t *testing.T, src string, opts graph.Options) *graph.Program {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("input", []byte(src))
	return graph.Compile(fs.Get(id), opts)
}

func execute(t *testing.T, src string, domain value.Vector) *graph.Result {
	t.Helper()
	return compile(t, src, graph.Options{}).Execute(domain)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDefinitionOverDomain(t *testing.T) {
	res := execute(t, "f(x) = sin(x)+3.14*x-2", value.Vector{0, 1, 2})
	ln := res.Lines[0]
	if ln.Err != nil {
		t.Fatalf("unexpected error: %v", ln.Err)
	}
	if ln.Samples == nil {
		t.Fatal("expected sample data")
	}
	for i, x := range []float64{0, 1, 2} {
		want := math.Sin(x) + 3.14*x - 2
		if !near(ln.Samples.X[i], x) || !near(ln.Samples.Y[i], want) {
			t.Errorf("sample %d: expected (%v, %v), got (%v, %v)",
				i, x, want, ln.Samples.X[i], ln.Samples.Y[i])
		}
	}
}

func TestParametricPlot(t *testing.T) {
	res := execute(t, "(cos(t),sin(t))[t,0,6.283]", value.Vector{0})
	ln := res.Lines[0]
	if ln.Err != nil {
		t.Fatalf("unexpected error: %v", ln.Err)
	}
	if ln.Samples == nil || len(ln.Samples.X) != graph.DefaultSamples {
		t.Fatalf("expected %d samples, got %+v", graph.DefaultSamples, ln.Samples)
	}
	step := 6.283 / float64(graph.DefaultSamples-1)
	for _, i := range []int{0, 1, 499, 999} {
		p := float64(i) * step
		if i == graph.DefaultSamples-1 {
			p = 6.283
		}
		if !near(ln.Samples.X[i], math.Cos(p)) || !near(ln.Samples.Y[i], math.Sin(p)) {
			t.Errorf("sample %d: expected (cos, sin) of %v, got (%v, %v)",
				i, p, ln.Samples.X[i], ln.Samples.Y[i])
		}
	}
}

func TestCommentOnlyLinesAreEmpty(t *testing.T) {
	src := "// just a note\nx+1\n#red // styling note"
	prog := compile(t, src, graph.Options{})

	for _, i := range []int{0, 2} {
		ln := prog.Lines[i]
		if ln.Err != nil {
			t.Errorf("line %d: unexpected error: %v", i+1, ln.Err)
		}
		if _, ok := ln.Compiled.(graph.EmptyLine); !ok {
			t.Errorf("line %d: expected EmptyLine, got %T", i+1, ln.Compiled)
		}
	}
	if _, ok := prog.Lines[1].Compiled.(*graph.FunctionDefinition); !ok {
		t.Errorf("line 2: expected definition, got %T", prog.Lines[1].Compiled)
	}

	res := prog.Execute(value.Vector{0, 1})
	if res.Lines[0].Err != nil || res.Lines[2].Err != nil {
		t.Errorf("comment lines must evaluate cleanly, got %v and %v",
			res.Lines[0].Err, res.Lines[2].Err)
	}
	if len(res.Lines[2].Directives) != 1 || res.Lines[2].Directives[0].Key != "red" {
		t.Errorf("directives on a comment line must pass through, got %v", res.Lines[2].Directives)
	}
}

func TestHiddenLineStillRegisters(t *testing.T) {
	src := "#red #hide y=x\ny*2"
	res := execute(t, src, value.Vector{1, 2, 3})

	first := res.Lines[0]
	if len(first.Directives) != 2 || first.Directives[0].Key != "red" || first.Directives[1].Key != "hide" {
		t.Fatalf("expected directives [red hide], got %v", first.Directives)
	}
	if !first.Hidden || first.Samples != nil {
		t.Errorf("hidden line must produce no visible samples, got %+v", first)
	}

	second := res.Lines[1]
	if second.Err != nil {
		t.Fatalf("second line must see y: %v", second.Err)
	}
	if second.Samples == nil || !near(second.Samples.Y[2], 6) {
		t.Errorf("expected y*2 over [1 2 3], got %+v", second.Samples)
	}
}

func TestBadLineIsolated(t *testing.T) {
	src := "x+1\nsin(x\nx-1"
	res := execute(t, src, value.Vector{0, 1})

	if res.Lines[0].Err != nil || res.Lines[0].Samples == nil {
		t.Errorf("line 1 must compile, got %+v", res.Lines[0])
	}
	if res.Lines[1].Err == nil {
		t.Error("line 2 must fail to compile")
	}
	if res.Lines[2].Err != nil || res.Lines[2].Samples == nil {
		t.Errorf("line 3 must compile, got %+v", res.Lines[2])
	}
}

func TestNoForwardReferences(t *testing.T) {
	src := "g+1\ng = x*x"
	res := execute(t, src, value.Vector{1})
	if res.Lines[0].Err == nil || !strings.Contains(res.Lines[0].Err.Error(), "not defined") {
		t.Errorf("expected name error on forward reference, got %v", res.Lines[0].Err)
	}
	if res.Lines[1].Err != nil {
		t.Errorf("definition line must still evaluate: %v", res.Lines[1].Err)
	}
}

func TestPolarDefinition(t *testing.T) {
	res := execute(t, "r = 1", value.Vector{0, 1, 2, 3})
	ln := res.Lines[0]
	if ln.Err != nil {
		t.Fatalf("unexpected error: %v", ln.Err)
	}
	if ln.Samples == nil || len(ln.Samples.X) != 4 {
		t.Fatalf("expected 4 polar samples, got %+v", ln.Samples)
	}
	// theta covers [0, 2pi) in 4 steps; the unit circle at those angles.
	for i := 0; i < 4; i++ {
		theta := float64(i) * math.Pi / 2
		if !near(ln.Samples.X[i], math.Cos(theta)) || !near(ln.Samples.Y[i], math.Sin(theta)) {
			t.Errorf("sample %d: expected angle %v on unit circle, got (%v, %v)",
				i, theta, ln.Samples.X[i], ln.Samples.Y[i])
		}
	}
}

func TestDirectResult(t *testing.T) {
	src := "a() = 6*7\na+1"
	res := execute(t, src, value.Vector{0, 1})
	if res.Lines[0].Direct != "42" {
		t.Errorf("expected direct result 42, got %q", res.Lines[0].Direct)
	}
	if res.Lines[1].Err != nil {
		t.Fatalf("a must be bound as a variable: %v", res.Lines[1].Err)
	}
	if res.Lines[1].Samples == nil || !near(res.Lines[1].Samples.Y[0], 43) {
		t.Errorf("expected constant curve 43, got %+v", res.Lines[1].Samples)
	}
}

func TestMultiParameterRegistersOnly(t *testing.T) {
	src := "g(a, b) = a+b\ng(x, 1)"
	res := execute(t, src, value.Vector{1, 2})
	if res.Lines[0].Samples != nil || res.Lines[0].Err != nil {
		t.Errorf("two-parameter definition must only register, got %+v", res.Lines[0])
	}
	second := res.Lines[1]
	if second.Err != nil {
		t.Fatalf("g must be callable: %v", second.Err)
	}
	if second.Samples == nil || !near(second.Samples.Y[1], 3) {
		t.Errorf("expected g(x,1) = x+1 over [1 2], got %+v", second.Samples)
	}
}

func TestNonScalarPlotBound(t *testing.T) {
	src := "v = x\n(cos(t),sin(t))[t,0,v]"
	res := execute(t, src, value.Vector{0, 1})
	err := res.Lines[1].Err
	if err == nil || !strings.Contains(err.Error(), "must be a scalar") {
		t.Errorf("expected scalar bound error, got %v", err)
	}
}

func TestDerivativeRewriteAtCompile(t *testing.T) {
	res := execute(t, "d = diff(x, x*x)", value.Vector{0, 1, 2})
	ln := res.Lines[0]
	if ln.Err != nil {
		t.Fatalf("unexpected error: %v", ln.Err)
	}
	// Exact 2x, not a finite-difference approximation.
	for i, x := range []float64{0, 1, 2} {
		if !near(ln.Samples.Y[i], 2*x) {
			t.Errorf("sample %d: expected %v, got %v", i, 2*x, ln.Samples.Y[i])
		}
	}
}

func TestCompileDiagnosticsCarryFileSpans(t *testing.T) {
	bag := diag.NewBag(64)
	fs := source.NewFileSet()
	id := fs.AddVirtual("input", []byte("x+1\nsin(x"))
	graph.Compile(fs.Get(id), graph.Options{Reporter: diag.BagReporter{Bag: bag}})

	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for the unclosed call")
	}
	d := bag.Items()[0]
	start, _ := fs.Resolve(d.Primary)
	if start.Line != 2 {
		t.Errorf("expected diagnostic on line 2, got %+v", start)
	}
}

func TestSemanticTokens(t *testing.T) {
	toks := graph.SemanticTokens(`sin(x)+1 #red // note`)
	classes := make([]string, len(toks))
	for i, tk := range toks {
		classes[i] = tk.Class.String()
	}
	want := []string{"builtin", "operator", "identifier", "operator", "operator", "number", "preprocess", "comment"}
	if len(classes) != len(want) {
		t.Fatalf("expected %v, got %v", want, classes)
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s (all: %v)", i, want[i], classes[i], classes)
		}
	}
}

func TestSemanticTokensBuiltinDiscrimination(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"sin", "builtin"},
		{"gcd", "builtin"},
		{"diff", "builtin"},
		{"sum", "builtin"},
		{"pi", "builtin"},
		{"e", "builtin"},
		{"x", "identifier"},
		{"sine", "identifier"},
		{"myfunc", "identifier"},
	}
	for _, tc := range cases {
		toks := graph.SemanticTokens(tc.text)
		if len(toks) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", tc.text, len(toks))
		}
		if got := toks[0].Class.String(); got != tc.want {
			t.Errorf("%q: expected class %s, got %s", tc.text, tc.want, got)
		}
	}
}

func TestInterval(t *testing.T) {
	iv := graph.Interval{S: -10, E: 10}
	if iv.Len() != 20 || iv.Mid() != 0 {
		t.Fatalf("unexpected interval geometry: %+v", iv)
	}
	z := iv.Zoom(0.5)
	if z.S != -5 || z.E != 5 {
		t.Errorf("zoom 0.5: expected [-5 5], got %+v", z)
	}
	sh := iv.RelShift(0.5)
	if sh.S != 0 || sh.E != 20 {
		t.Errorf("relshift 0.5: expected [0 20], got %+v", sh)
	}
	d := iv.Domain(3)
	if len(d) != 3 || d[0] != -10 || d[1] != 0 || d[2] != 10 {
		t.Errorf("domain: got %v", d)
	}
}
