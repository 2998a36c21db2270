package parser

import (
	"graphite/internal/ast"
	"graphite/internal/source"
)

// The *String variants lex a standalone piece of text through a virtual
// file. Spans in the result are offsets into that text.

func ParseExpressionString(text string) (ast.Expr, error) {
	file, span := virtualLine(text)
	return ParseExpression(file, span)
}

func ParseFunctionDefinitionString(text string) (*FuncDef, error) {
	file, span := virtualLine(text)
	return ParseFunctionDefinition(file, span)
}

func ParseParametricPlotString(text string) (*ParamPlotDef, error) {
	file, span := virtualLine(text)
	return ParseParametricPlot(file, span)
}

func ParseEmptyString(text string) error {
	file, span := virtualLine(text)
	return ParseEmpty(file, span)
}

func virtualLine(text string) (*source.File, source.Span) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("line", []byte(text))
	f := fs.Get(id)
	return f, source.Span{File: id, Start: 0, End: uint32(len(f.Content))}
}
