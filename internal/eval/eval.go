// Package eval walks expression trees against a context of variables and
// functions. Every failure is an explicit *Error carrying a diagnostic code
// and the span of the offending node; evaluation never panics on user input.
package eval

import (
	"fmt"

	"graphite/internal/ast"
	"graphite/internal/diag"
	"graphite/internal/source"
	"graphite/internal/value"
)

// Error is the only error kind evaluation produces.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func evalErr(code diag.Code, sp source.Span, format string, args ...any) *Error {
	return &Error{Code: code, Span: sp, Msg: fmt.Sprintf(format, args...)}
}

// asError coerces an arbitrary error (typically from value.Apply) into an
// *Error anchored at the given span, preserving an existing code and span.
func asError(err error, code diag.Code, sp source.Span) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Code: code, Span: sp, Msg: err.Error()}
}

// Eval computes the value of an expression in the given context.
func Eval(e ast.Expr, ctx *Context) (value.Value, error) {
	switch n := e.(type) {
	case *ast.Constant:
		return n.Val, nil

	case *ast.Variable:
		v, ok := ctx.Var(n.Name)
		if !ok {
			return nil, evalErr(diag.EvalNameError, n.Span(), "variable %q not defined", n.Name)
		}
		return v, nil

	case *ast.FunCall:
		f, ok := ctx.Func(n.Name)
		if !ok {
			return nil, evalErr(diag.EvalNameError, n.Span(), "function %q not defined", n.Name)
		}
		return f.Call(ctx, n)

	default:
		return nil, evalErr(diag.EvalUnsupportedOp, e.Span(), "cannot evaluate %T", e)
	}
}

// evalArgs computes every argument of a call in order.
func evalArgs(ctx *Context, call *ast.FunCall) ([]value.Value, error) {
	vals := make([]value.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := Eval(a, ctx)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
