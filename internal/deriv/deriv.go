// Package deriv rewrites diff calls into their symbolic derivatives.
//
// The rewrite runs once, when a definition line is compiled. Calls the rule
// table does not cover are left as diff calls and resolved numerically at
// evaluation time, so the rewrite is a best-effort sharpening, never a
// gatekeeper.
package deriv

import (
	"fmt"

	"graphite/internal/ast"
	"graphite/internal/diag"
	"graphite/internal/source"
	"graphite/internal/value"
)

// Error is a rewrite failure: a diff call whose first argument is not a
// variable name.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Rewrite returns the expression with every diff call it can resolve
// replaced by the symbolic derivative. Arguments are rewritten before their
// call, so nested diff calls resolve from the inside out and a second pass
// is a no-op.
func Rewrite(e ast.Expr) (ast.Expr, error) {
	switch n := e.(type) {
	case *ast.Constant, *ast.Variable:
		return e, nil

	case *ast.FunCall:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			r, err := Rewrite(a)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		if n.Name != "diff" || len(args) != 2 {
			return ast.NewFunCall(n.Span(), n.Name, args), nil
		}

		v, ok := args[0].(*ast.Variable)
		if !ok {
			return nil, &Error{
				Code: diag.EvalBadFunctionalArg,
				Span: args[0].Span(),
				Msg:  "differentiated variable must be a variable name",
			}
		}
		if d, ok := derive(v.Name, args[1]); ok {
			return d, nil
		}
		// No rule covers the body; keep the call for the numeric fallback.
		return ast.NewFunCall(n.Span(), "diff", args), nil

	default:
		return nil, &Error{
			Code: diag.EvalUnsupportedOp,
			Span: e.Span(),
			Msg:  fmt.Sprintf("cannot rewrite %T", e),
		}
	}
}

// derive computes d(e)/d(x). The second result is false when some
// subexpression has no rule, in which case the caller keeps the diff call.
func derive(x string, e ast.Expr) (ast.Expr, bool) {
	switch n := e.(type) {
	case *ast.Constant:
		return zero(n.Span()), true

	case *ast.Variable:
		if n.Name == x {
			return one(n.Span()), true
		}
		return zero(n.Span()), true

	case *ast.FunCall:
		return deriveCall(x, n)
	}
	return nil, false
}

func deriveCall(x string, n *ast.FunCall) (ast.Expr, bool) {
	sp := n.Span()

	switch n.Name {
	case "+", "-":
		if len(n.Args) != 2 {
			return nil, false
		}
		da, ok := derive(x, n.Args[0])
		if !ok {
			return nil, false
		}
		db, ok := derive(x, n.Args[1])
		if !ok {
			return nil, false
		}
		if n.Name == "+" {
			return mkAdd(sp, da, db), true
		}
		return mkSub(sp, da, db), true

	case "--":
		if len(n.Args) != 1 {
			return nil, false
		}
		da, ok := derive(x, n.Args[0])
		if !ok {
			return nil, false
		}
		return mkNeg(sp, da), true

	case "*":
		if len(n.Args) != 2 {
			return nil, false
		}
		a, b := n.Args[0], n.Args[1]
		da, ok := derive(x, a)
		if !ok {
			return nil, false
		}
		db, ok := derive(x, b)
		if !ok {
			return nil, false
		}
		return mkAdd(sp, mkMul(sp, da, b), mkMul(sp, a, db)), true

	case "/":
		if len(n.Args) != 2 {
			return nil, false
		}
		a, b := n.Args[0], n.Args[1]
		da, ok := derive(x, a)
		if !ok {
			return nil, false
		}
		db, ok := derive(x, b)
		if !ok {
			return nil, false
		}
		num := mkSub(sp, mkMul(sp, da, b), mkMul(sp, a, db))
		return mkDiv(sp, num, mkMul(sp, b, b)), true

	case "**", "^", "pow":
		if len(n.Args) != 2 {
			return nil, false
		}
		return derivePower(x, sp, n.Args[0], n.Args[1])

	case "sin":
		if len(n.Args) != 1 {
			return nil, false
		}
		return chain(x, sp, n.Args[0], func(a ast.Expr) ast.Expr {
			return ast.NewFunCall(sp, "cos", []ast.Expr{a})
		})

	case "cos":
		if len(n.Args) != 1 {
			return nil, false
		}
		return chain(x, sp, n.Args[0], func(a ast.Expr) ast.Expr {
			return mkNeg(sp, ast.NewFunCall(sp, "sin", []ast.Expr{a}))
		})

	case "exp":
		if len(n.Args) != 1 {
			return nil, false
		}
		return chain(x, sp, n.Args[0], func(a ast.Expr) ast.Expr {
			return ast.NewFunCall(sp, "exp", []ast.Expr{a})
		})

	case "log":
		if len(n.Args) != 1 {
			return nil, false
		}
		a := n.Args[0]
		da, ok := derive(x, a)
		if !ok {
			return nil, false
		}
		return mkDiv(sp, da, a), true
	}

	return nil, false
}

// chain applies the chain rule: d(f(a)) = f'(a) * a'.
func chain(x string, sp source.Span, a ast.Expr, outer func(ast.Expr) ast.Expr) (ast.Expr, bool) {
	da, ok := derive(x, a)
	if !ok {
		return nil, false
	}
	return mkMul(sp, outer(a), da), true
}

// derivePower handles a^b. A constant exponent gets the plain power rule,
// c*a^(c-1)*a', which stays finite where the general logarithmic form
// a^b*(b'*log(a)+b*a'/a) would produce NaN (for instance x^2 at x=0).
func derivePower(x string, sp source.Span, a, b ast.Expr) (ast.Expr, bool) {
	da, ok := derive(x, a)
	if !ok {
		return nil, false
	}

	if c, isConst := b.(*ast.Constant); isConst {
		cm1, err := value.Apply("sub", c.Val, value.Scalar(1))
		if err != nil {
			return nil, false
		}
		pow := ast.NewFunCall(sp, "**", []ast.Expr{a, ast.NewConstant(sp, cm1)})
		return mkMul(sp, mkMul(sp, ast.NewConstant(sp, c.Val), pow), da), true
	}

	db, ok := derive(x, b)
	if !ok {
		return nil, false
	}
	logA := ast.NewFunCall(sp, "log", []ast.Expr{a})
	pow := ast.NewFunCall(sp, "**", []ast.Expr{a, b})
	inner := mkAdd(sp, mkMul(sp, db, logA), mkMul(sp, b, mkDiv(sp, da, a)))
	return mkMul(sp, pow, inner), true
}
