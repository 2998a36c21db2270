package parser_test

import (
	"strings"
	"testing"

	"graphite/internal/ast"
	"graphite/internal/parser"
)

// expectAST parses the input and compares the rendered tree.
func expectAST(t *testing.T, input, want string) {
	t.Helper()
	expr, err := parser.ParseExpressionString(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	if got := expr.String(); got != want {
		t.Errorf("parse %q: expected %s, got %s", input, want, got)
	}
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	cases := []struct{ input, want string }{
		{"1+2*3", "(1+(2*3))"},
		{"1*2+3", "((1*2)+3)"},
		{"1-2-3", "((1-2)-3)"},
		{"1/2/3", "((1/2)/3)"},
		{"2**3**2", "((2**3)**2)"},
		{"2^3^2", "((2^3)^2)"},
		{"2**3*4", "((2**3)*4)"},
		{"-x", "(-x)"},
		{"-x*y", "((-x)*y)"},
		{"-x**2", "(-(x**2))"},
		{"2*-x", "(2*(-x))"},
		{"--x", "(-(-x))"},
		{"(1+2)*3", "((1+2)*3)"},
		{"a+b*c^d", "(a+(b*(c^d)))"},
	}
	for _, tc := range cases {
		expectAST(t, tc.input, tc.want)
	}
}

func TestCalls(t *testing.T) {
	cases := []struct{ input, want string }{
		{"sin(x)", "sin(x)"},
		{"f(a,b, c)", "f(a, b, c)"},
		{"f(g(x))", "f(g(x))"},
		{"diff(x, sin(x))", "diff(x, sin(x))"},
		{"sin(x)+3.14*y-2/z", "((sin(x)+(3.14*y))-(2/z))"},
		{"atan2(y, x)^2", "(atan2(y, x)^2)"},
	}
	for _, tc := range cases {
		expectAST(t, tc.input, tc.want)
	}
}

// Re-parsing a rendered tree yields the same rendering.
func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"sin(x)+3.14*y-2/z",
		"-x**2 + f(a, b)/c",
		"1/(2+g(x)) - -3",
	}
	for _, input := range inputs {
		first, err := parser.ParseExpressionString(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		second, err := parser.ParseExpressionString(first.String())
		if err != nil {
			t.Fatalf("re-parse %q: %v", first.String(), err)
		}
		if first.String() != second.String() {
			t.Errorf("round trip diverged: %s vs %s", first.String(), second.String())
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	inputs := []string{
		"sin(x",
		"1+",
		"*2",
		"f(,)",
		"(1+2",
		"1 2",
		"x y",
		"",
	}
	for _, input := range inputs {
		if _, err := parser.ParseExpressionString(input); err == nil {
			t.Errorf("parse %q: expected a syntax error", input)
		}
	}
}

func TestWholeLineMustBeConsumed(t *testing.T) {
	_, err := parser.ParseExpressionString("x+1 )")
	if err == nil {
		t.Fatal("expected a trailing-input error")
	}
	var syn *parser.SyntaxError
	if !asSyntaxError(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
}

func asSyntaxError(err error, target **parser.SyntaxError) bool {
	se, ok := err.(*parser.SyntaxError)
	if ok {
		*target = se
	}
	return ok
}

func TestFunctionDefinitionShapes(t *testing.T) {
	cases := []struct {
		input     string
		name      string
		hasParams bool
		params    []string
		body      string
	}{
		{"f(x) = sin(x)+3.14*x-2", "f", true, []string{"x"}, "((sin(x)+(3.14*x))-2)"},
		{"y=x", "y", false, nil, "x"},
		{"g(a, b) = a-b", "g", true, []string{"a", "b"}, "(a-b)"},
		{"sin(x)*2", "", false, nil, "(sin(x)*2)"},
		{"f() = 42", "f", true, []string{}, "42"},
		{"r = cos(theta)", "r", false, nil, "cos(theta)"},
	}
	for _, tc := range cases {
		def, err := parser.ParseFunctionDefinitionString(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if def.Name != tc.name {
			t.Errorf("%q: expected name %q, got %q", tc.input, tc.name, def.Name)
		}
		if def.HasParams != tc.hasParams {
			t.Errorf("%q: expected HasParams=%v", tc.input, tc.hasParams)
		}
		if len(def.Params) != len(tc.params) {
			t.Errorf("%q: expected params %v, got %v", tc.input, tc.params, def.Params)
		} else {
			for i := range tc.params {
				if def.Params[i] != tc.params[i] {
					t.Errorf("%q: param %d: expected %q, got %q", tc.input, i, tc.params[i], def.Params[i])
				}
			}
		}
		if got := def.Body.String(); got != tc.body {
			t.Errorf("%q: expected body %s, got %s", tc.input, tc.body, got)
		}
	}
}

func TestFunctionDefinitionRejectsExprParams(t *testing.T) {
	_, err := parser.ParseFunctionDefinitionString("f(x+1) = x")
	if err == nil {
		t.Fatal("expected a parameter-list error")
	}
	if !strings.Contains(err.Error(), "variable names") {
		t.Errorf("expected parameter-list message, got %q", err)
	}
}

func TestParametricPlot(t *testing.T) {
	def, err := parser.ParseParametricPlotString("(cos(t),sin(t))[t,0,6.283]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.X.String() != "cos(t)" || def.Y.String() != "sin(t)" {
		t.Errorf("expected cos/sin expressions, got %s, %s", def.X, def.Y)
	}
	if def.Param != "t" {
		t.Errorf("expected param t, got %q", def.Param)
	}
	if def.Start.String() != "0" || def.End.String() != "6.283" {
		t.Errorf("expected bounds 0 and 6.283, got %s, %s", def.Start, def.End)
	}
}

func TestParametricPlotExpressionBounds(t *testing.T) {
	def, err := parser.ParseParametricPlotString("(t, t*t)[t, 0, 2*pi]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.End.String() != "(2*pi)" {
		t.Errorf("expected expression bound, got %s", def.End)
	}
}

func TestParametricPlotErrors(t *testing.T) {
	inputs := []string{
		"(cos(t),sin(t))",          // parameter block required
		"(cos(t))[t,0,1]",          // needs two expressions
		"(cos(t),sin(t))[t,0]",     // needs three parameters
		"(cos(t),sin(t))[1,0,1]",   // loop variable must be a name
		"(cos(t),sin(t))[t,0,1] x", // trailing input
	}
	for _, input := range inputs {
		if _, err := parser.ParseParametricPlotString(input); err == nil {
			t.Errorf("parse %q: expected an error", input)
		}
	}
}

func TestRequirements(t *testing.T) {
	expr, err := parser.ParseExpressionString("sin(x) + y*f(x)")
	if err != nil {
		t.Fatal(err)
	}
	got := ast.Requirements(expr)
	want := []string{"+", "sin", "x", "*", "y", "f"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\t", "// a comment", "  // indented note"} {
		if err := parser.ParseEmptyString(text); err != nil {
			t.Errorf("%q: expected empty line, got %v", text, err)
		}
	}
	for _, text := range []string{"x", "1+2", "x // trailing comment"} {
		if err := parser.ParseEmptyString(text); err == nil {
			t.Errorf("%q: expected an error", text)
		}
	}
}
