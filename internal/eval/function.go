package eval

import (
	"graphite/internal/ast"
	"graphite/internal/diag"
	"graphite/internal/value"
)

// maxCallDepth bounds nested user-function calls.
const maxCallDepth = 1000

// Function is anything callable from an expression. Arguments arrive as
// unevaluated expressions: ordinary functions evaluate them eagerly, while
// functionals like diff and sum need the expressions themselves.
type Function interface {
	Call(ctx *Context, call *ast.FunCall) (value.Value, error)
}

// Primitive applies a named numeric operation from the shared kernel table.
// Operand shapes and arity are checked by value.Apply.
type Primitive struct {
	Op string
}

func (p Primitive) Call(ctx *Context, call *ast.FunCall) (value.Value, error) {
	vals, err := evalArgs(ctx, call)
	if err != nil {
		return nil, err
	}
	res, err := value.Apply(p.Op, vals...)
	if err != nil {
		return nil, asError(err, diag.EvalShapeError, call.Span())
	}
	return res, nil
}

// IntegerPrimitive rounds every operand to the nearest integer before
// applying the operation. Used for gcd and lcm.
type IntegerPrimitive struct {
	Op string
}

func (p IntegerPrimitive) Call(ctx *Context, call *ast.FunCall) (value.Value, error) {
	vals, err := evalArgs(ctx, call)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		vals[i] = v.AsInteger()
	}
	res, err := value.Apply(p.Op, vals...)
	if err != nil {
		return nil, asError(err, diag.EvalShapeError, call.Span())
	}
	return res, nil
}

// UserFunction is a compiled definition line. Parameters bind into a copy
// of the caller's context, in order, so a later parameter's default shape
// can depend on an earlier one; the result broadcasts to the shape of the
// first argument.
type UserFunction struct {
	Params []string
	Body   ast.Expr
}

func (f *UserFunction) Call(ctx *Context, call *ast.FunCall) (value.Value, error) {
	if len(call.Args) != len(f.Params) {
		return nil, evalErr(diag.EvalArityError, call.Span(),
			"expected %d parameters, got %d", len(f.Params), len(call.Args))
	}

	inner := ctx.Copy()
	inner.depth++
	if inner.depth > maxCallDepth {
		return nil, evalErr(diag.EvalRecursionLimit, call.Span(),
			"call depth limit exceeded evaluating %q", call.Name)
	}

	var first value.Value
	for i, p := range f.Params {
		v, err := Eval(call.Args[i], inner)
		if err != nil {
			return nil, err
		}
		inner.SetVar(p, v)
		if i == 0 {
			first = v
		}
	}

	res, err := Eval(f.Body, inner)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return res, nil
	}
	res, err = value.Apply("add", res, value.ZerosLike(first))
	if err != nil {
		return nil, asError(err, diag.EvalShapeError, call.Span())
	}
	return res, nil
}
