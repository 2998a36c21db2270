package deriv

import (
	"graphite/internal/ast"
	"graphite/internal/source"
	"graphite/internal/value"
)

// Light folding on the node constructors keeps derivative trees from
// drowning in 0*b+a*1 noise. Only identities that hold for every operand
// shape are applied.

func zero(sp source.Span) ast.Expr {
	return ast.NewConstant(sp, value.Scalar(0))
}

func one(sp source.Span) ast.Expr {
	return ast.NewConstant(sp, value.Scalar(1))
}

func isScalarConst(e ast.Expr, want float64) bool {
	c, ok := e.(*ast.Constant)
	if !ok {
		return false
	}
	s, ok := c.Val.(value.Scalar)
	return ok && float64(s) == want
}

func mkAdd(sp source.Span, a, b ast.Expr) ast.Expr {
	if isScalarConst(a, 0) {
		return b
	}
	if isScalarConst(b, 0) {
		return a
	}
	return ast.NewFunCall(sp, "+", []ast.Expr{a, b})
}

func mkSub(sp source.Span, a, b ast.Expr) ast.Expr {
	if isScalarConst(b, 0) {
		return a
	}
	if isScalarConst(a, 0) {
		return mkNeg(sp, b)
	}
	return ast.NewFunCall(sp, "-", []ast.Expr{a, b})
}

func mkNeg(sp source.Span, a ast.Expr) ast.Expr {
	if isScalarConst(a, 0) {
		return a
	}
	return ast.NewFunCall(sp, "--", []ast.Expr{a})
}

func mkMul(sp source.Span, a, b ast.Expr) ast.Expr {
	if isScalarConst(a, 0) || isScalarConst(b, 0) {
		return zero(sp)
	}
	if isScalarConst(a, 1) {
		return b
	}
	if isScalarConst(b, 1) {
		return a
	}
	return ast.NewFunCall(sp, "*", []ast.Expr{a, b})
}

func mkDiv(sp source.Span, a, b ast.Expr) ast.Expr {
	if isScalarConst(a, 0) {
		return a
	}
	if isScalarConst(b, 1) {
		return a
	}
	return ast.NewFunCall(sp, "/", []ast.Expr{a, b})
}
