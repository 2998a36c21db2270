package deriv_test

import (
	"math"
	"strings"
	"testing"

	"graphite/internal/ast"
	"graphite/internal/deriv"
	"graphite/internal/eval"
	"graphite/internal/parser"
	"graphite/internal/value"
)

func rewrite(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseExpressionString(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	out, err := deriv.Rewrite(expr)
	if err != nil {
		t.Fatalf("rewrite %q: %v", input, err)
	}
	return out
}

// evalAt evaluates the rewritten derivative at x.
func evalAt(t *testing.T, expr ast.Expr, x float64) float64 {
	t.Helper()
	ctx := eval.Builtins()
	ctx.SetVar("x", value.Scalar(x))
	v, err := eval.Eval(expr, ctx)
	if err != nil {
		t.Fatalf("eval %s at x=%v: %v", expr, x, err)
	}
	s, ok := v.(value.Scalar)
	if !ok {
		t.Fatalf("expected scalar, got %s", v.Kind())
	}
	return float64(s)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDerivativePointwise(t *testing.T) {
	cases := []struct {
		input string
		at    float64
		want  float64
	}{
		{"diff(x, x)", 5, 1},
		{"diff(x, 7)", 5, 0},
		{"diff(x, y)", 5, 0},
		{"diff(x, x*x)", 3, 6},
		{"diff(x, x*x*x)", 2, 12},
		{"diff(x, x+x)", 1, 2},
		{"diff(x, -x)", 1, -1},
		{"diff(x, 1/x)", 2, -0.25},
		{"diff(x, sin(x))", 0, 1},
		{"diff(x, cos(x))", 0, 0},
		{"diff(x, exp(x))", 0, 1},
		{"diff(x, log(x))", 4, 0.25},
		{"diff(x, sin(x*x))", 1, 2 * math.Cos(1)},
		{"diff(x, x**2)", 0, 0}, // constant exponent rule, finite at 0
		{"diff(x, x^3)", 2, 12},
		{"diff(x, 2**x)", 1, 2 * math.Ln2},
	}
	for _, tc := range cases {
		got := evalAt(t, rewrite(t, tc.input), tc.at)
		if !near(got, tc.want) {
			t.Errorf("%s at x=%v: expected %v, got %v", tc.input, tc.at, tc.want, got)
		}
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	inputs := []string{
		"diff(x, x*sin(x))",
		"diff(x, diff(x, x*x*x))",
		"diff(x, f(x))",
		"x + diff(x, x^2)",
	}
	for _, input := range inputs {
		once := rewrite(t, input)
		twice, err := deriv.Rewrite(once)
		if err != nil {
			t.Fatalf("second rewrite of %q: %v", input, err)
		}
		if once.String() != twice.String() {
			t.Errorf("%q: second rewrite changed %s to %s", input, once, twice)
		}
	}
}

func TestNestedDiff(t *testing.T) {
	// Second derivative of x^3 is 6x.
	got := evalAt(t, rewrite(t, "diff(x, diff(x, x*x*x))"), 2)
	if !near(got, 12) {
		t.Errorf("second derivative of x^3 at 2: expected 12, got %v", got)
	}
}

func TestUnknownCallKeepsDiff(t *testing.T) {
	out := rewrite(t, "diff(x, f(x))")
	call, ok := out.(*ast.FunCall)
	if !ok || call.Name != "diff" {
		t.Fatalf("expected diff call preserved for numeric fallback, got %s", out)
	}
}

func TestNonVariableArgument(t *testing.T) {
	expr, err := parser.ParseExpressionString("diff(1, x)")
	if err != nil {
		t.Fatal(err)
	}
	_, err = deriv.Rewrite(expr)
	if err == nil || !strings.Contains(err.Error(), "variable name") {
		t.Errorf("expected rewrite error, got %v", err)
	}
}

func TestRewriteInsideLargerExpression(t *testing.T) {
	// diff resolves in place, the rest of the tree is untouched.
	got := evalAt(t, rewrite(t, "3 + diff(x, x*x)"), 5)
	if !near(got, 13) {
		t.Errorf("expected 13, got %v", got)
	}
}
