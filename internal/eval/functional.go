package eval

import (
	"math"

	"graphite/internal/ast"
	"graphite/internal/diag"
	"graphite/internal/value"
)

// diffEps is the step of the one-sided difference quotient used when a
// derivative cannot be resolved symbolically.
const diffEps = 1e-7

// DerivativeFunctional numerically differentiates an expression with
// respect to a variable: diff(x, expr) evaluates expr at x and at x+eps.
// Definition lines normally eliminate diff calls symbolically before
// evaluation; this is the runtime fallback for whatever remains.
type DerivativeFunctional struct{}

func (DerivativeFunctional) Call(ctx *Context, call *ast.FunCall) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, evalErr(diag.EvalArityError, call.Span(),
			"diff expected 2 parameters, got %d", len(call.Args))
	}
	v, ok := call.Args[0].(*ast.Variable)
	if !ok {
		return nil, evalErr(diag.EvalBadFunctionalArg, call.Args[0].Span(),
			"differentiated variable must be a variable name")
	}

	base, err := Eval(v, ctx)
	if err != nil {
		return nil, err
	}
	shifted, err := value.Apply("add", base, value.Scalar(diffEps))
	if err != nil {
		return nil, asError(err, diag.EvalShapeError, call.Span())
	}

	at := ctx.Copy()
	at.SetVar(v.Name, shifted)

	hi, err := Eval(call.Args[1], at)
	if err != nil {
		return nil, err
	}
	lo, err := Eval(call.Args[1], ctx)
	if err != nil {
		return nil, err
	}

	d, err := value.Apply("sub", hi, lo)
	if err != nil {
		return nil, asError(err, diag.EvalShapeError, call.Span())
	}
	d, err = value.Apply("div", d, value.Scalar(diffEps))
	if err != nil {
		return nil, asError(err, diag.EvalShapeError, call.Span())
	}
	d, err = value.Apply("add", d, value.ZerosLike(base))
	if err != nil {
		return nil, asError(err, diag.EvalShapeError, call.Span())
	}
	return d, nil
}

// SumFunctional evaluates sum(k, start, stop, expr): expr summed over
// integer values of k from start to stop inclusive. Bounds must reduce to
// scalars; they are rounded to integers.
type SumFunctional struct{}

func (SumFunctional) Call(ctx *Context, call *ast.FunCall) (value.Value, error) {
	if len(call.Args) != 4 {
		return nil, evalErr(diag.EvalArityError, call.Span(),
			"sum expected 4 parameters, got %d", len(call.Args))
	}
	v, ok := call.Args[0].(*ast.Variable)
	if !ok {
		return nil, evalErr(diag.EvalBadFunctionalArg, call.Args[0].Span(),
			"summation variable must be a variable name")
	}

	lo, err := scalarBound(ctx, call.Args[1], "lower")
	if err != nil {
		return nil, err
	}
	hi, err := scalarBound(ctx, call.Args[2], "upper")
	if err != nil {
		return nil, err
	}

	inner := ctx.Copy()
	inner.SetVar(v.Name, value.Scalar(lo))
	res, err := Eval(call.Args[3], inner)
	if err != nil {
		return nil, err
	}
	for i := lo + 1; i <= hi; i++ {
		inner.SetVar(v.Name, value.Scalar(i))
		term, err := Eval(call.Args[3], inner)
		if err != nil {
			return nil, err
		}
		res, err = value.Apply("add", res, term)
		if err != nil {
			return nil, asError(err, diag.EvalShapeError, call.Span())
		}
	}
	return res, nil
}

// scalarBound evaluates a functional bound that must reduce to a scalar and
// rounds it to an integer.
func scalarBound(ctx *Context, e ast.Expr, which string) (int, error) {
	val, err := Eval(e, ctx)
	if err != nil {
		return 0, err
	}
	s, ok := val.(value.Scalar)
	if !ok {
		return 0, evalErr(diag.EvalBadFunctionalArg, e.Span(),
			"%s bound must be a scalar, got %s", which, val.Kind())
	}
	return int(math.Round(float64(s))), nil
}
