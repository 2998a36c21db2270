package eval

import (
	"math"

	"graphite/internal/value"
)

// integerOps are the kernel operations whose operands are rounded to
// integers before applying.
var integerOps = map[string]bool{
	"gcd": true,
	"lcm": true,
}

// operatorAliases maps the spellings the parser produces to kernel names.
var operatorAliases = map[string]string{
	"+":  "add",
	"-":  "sub",
	"--": "neg",
	"*":  "mul",
	"/":  "div",
	"**": "pow",
	"^":  "pow",
}

// Builtins returns a fresh context holding the full primitive registry: one
// function per kernel operation, the operator aliases, the diff and sum
// functionals, and the constants pi and e. Callers own the result and may
// mutate it freely.
func Builtins() *Context {
	ctx := NewContext()

	for _, op := range value.Ops() {
		if integerOps[op] {
			ctx.SetFunc(op, IntegerPrimitive{Op: op})
		} else {
			ctx.SetFunc(op, Primitive{Op: op})
		}
	}
	for alias, op := range operatorAliases {
		ctx.SetFunc(alias, Primitive{Op: op})
	}

	ctx.SetFunc("diff", DerivativeFunctional{})
	ctx.SetFunc("sum", SumFunctional{})

	ctx.SetVar("pi", value.Scalar(math.Pi))
	ctx.SetVar("e", value.Scalar(math.E))

	return ctx
}

// BuiltinNames returns the set of identifier names Builtins registers:
// every primitive, the functionals, and the constants. Operator aliases are
// excluded since they never lex as identifiers.
func BuiltinNames() map[string]bool {
	names := make(map[string]bool)
	for _, op := range value.Ops() {
		names[op] = true
	}
	names["diff"] = true
	names["sum"] = true
	names["pi"] = true
	names["e"] = true
	return names
}
