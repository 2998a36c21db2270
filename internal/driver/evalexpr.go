package driver

import (
	"graphite/internal/deriv"
	"graphite/internal/eval"
	"graphite/internal/parser"
	"graphite/internal/value"
)

// EvalExpression parses and evaluates a single expression against the
// builtin context. Symbolic derivative rewriting runs first so diff calls
// get exact rules where they exist.
func EvalExpression(text string) (value.Value, error) {
	expr, err := parser.ParseExpressionString(text)
	if err != nil {
		return nil, err
	}
	expr, err = deriv.Rewrite(expr)
	if err != nil {
		return nil, err
	}
	return eval.Eval(expr, eval.Builtins())
}
