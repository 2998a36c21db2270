package ast_test

import (
	"testing"

	"graphite/internal/ast"
	"graphite/internal/source"
	"graphite/internal/value"
)

func sp() source.Span { return source.Span{} }

func TestStringRendering(t *testing.T) {
	// -(x**2) + f(y, 3)
	expr := ast.NewFunCall(sp(), "+", []ast.Expr{
		ast.NewFunCall(sp(), "--", []ast.Expr{
			ast.NewFunCall(sp(), "**", []ast.Expr{
				ast.NewVariable(sp(), "x"),
				ast.NewConstant(sp(), value.Scalar(2)),
			}),
		}),
		ast.NewFunCall(sp(), "f", []ast.Expr{
			ast.NewVariable(sp(), "y"),
			ast.NewConstant(sp(), value.Scalar(3)),
		}),
	})
	want := "((-(x**2))+f(y, 3))"
	if got := expr.String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestWalkStopsDescending(t *testing.T) {
	inner := ast.NewFunCall(sp(), "g", []ast.Expr{ast.NewVariable(sp(), "z")})
	expr := ast.NewFunCall(sp(), "f", []ast.Expr{inner, ast.NewVariable(sp(), "w")})

	var visited []string
	ast.Walk(expr, func(n ast.Expr) bool {
		switch n := n.(type) {
		case *ast.FunCall:
			visited = append(visited, n.Name)
			return n.Name != "g"
		case *ast.Variable:
			visited = append(visited, n.Name)
		}
		return true
	})

	want := []string{"f", "g", "w"}
	if len(visited) != len(want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, visited)
		}
	}
}
