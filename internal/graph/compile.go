// Package graph compiles source lines into plottable definitions and
// evaluates them over a sampling domain. One bad line never disturbs the
// compilation or evaluation of another: every failure lands in that line's
// error slot.
package graph

import (
	"graphite/internal/ast"
	"graphite/internal/deriv"
	"graphite/internal/eval"
	"graphite/internal/parser"
)

// CompiledLine is the classified form of one source line: empty, a function
// definition, or a parametric plot.
type CompiledLine interface {
	compiledLine()
}

// EmptyLine is a line holding nothing but whitespace, comments, or
// directives.
type EmptyLine struct{}

// FunctionDefinition is a compiled definition line. Fn's body has already
// been through the derivative rewrite. Name is empty for an anonymous
// expression line; Polar marks the implicit-theta convention for a
// definition named r.
type FunctionDefinition struct {
	Name  string
	Polar bool
	Fn    *eval.UserFunction
}

// ParamPlot is a compiled parametric-plot line.
type ParamPlot struct {
	X, Y       ast.Expr
	Param      string
	Start, End ast.Expr
}

func (EmptyLine) compiledLine()           {}
func (*FunctionDefinition) compiledLine() {}
func (*ParamPlot) compiledLine()          {}

// CompileLine classifies one preprocessed line, trying function definition,
// parametric plot, then empty, in that order. When all three fail the
// function-definition error is returned, since that is the most informative
// for the common case.
func CompileLine(clean string) (CompiledLine, error) {
	def, defErr := parser.ParseFunctionDefinitionString(clean)
	if defErr == nil {
		return compileDefinition(def)
	}

	if pp, err := parser.ParseParametricPlotString(clean); err == nil {
		return &ParamPlot{X: pp.X, Y: pp.Y, Param: pp.Param, Start: pp.Start, End: pp.End}, nil
	}

	if err := parser.ParseEmptyString(clean); err == nil {
		return EmptyLine{}, nil
	}
	return nil, defErr
}

func compileDefinition(def *parser.FuncDef) (CompiledLine, error) {
	params := def.Params
	polar := false
	if !def.HasParams {
		if def.Name == "r" {
			params = []string{"theta"}
			polar = true
		} else {
			params = []string{"x"}
		}
	}

	body, err := deriv.Rewrite(def.Body)
	if err != nil {
		return nil, err
	}

	return &FunctionDefinition{
		Name:  def.Name,
		Polar: polar,
		Fn:    &eval.UserFunction{Params: params, Body: body},
	}, nil
}
