package parser

import (
	"graphite/internal/ast"
	"graphite/internal/diag"
	"graphite/internal/source"
	"graphite/internal/token"
)

// FuncDef is a parsed function-definition line: `[name [(params)] =] expr`.
// An absent header leaves Name empty; HasParams distinguishes `f = x`
// (implicit parameter) from `f() = x` (explicitly none).
type FuncDef struct {
	Name      string
	Params    []string
	HasParams bool
	Body      ast.Expr
}

// ParamPlotDef is a parsed parametric-plot line:
// `( xExpr , yExpr ) [ param , startExpr , endExpr ]`.
type ParamPlotDef struct {
	X, Y       ast.Expr
	Param      string
	Start, End ast.Expr
}

// ParseFunctionDefinition parses the range as a function-definition line.
func ParseFunctionDefinition(file *source.File, span source.Span) (*FuncDef, error) {
	p := newParser(file, span)

	def := &FuncDef{}
	if err := p.parseDefHeader(def); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	def.Body = body
	return def, nil
}

// parseDefHeader consumes the optional `name [(params)] =` prefix. When the
// prefix does not pan out the position is restored and the whole line is an
// anonymous expression.
func (p *Parser) parseDefHeader(def *FuncDef) *SyntaxError {
	if !p.at(token.Ident) {
		return nil
	}

	// `name = expr`
	if p.peekAt(1).Kind == token.Assign {
		def.Name = p.next().Text
		p.next() // '='
		return nil
	}

	if p.peekAt(1).Kind != token.LParen {
		return nil
	}

	// `name ( ... ) = expr`, as long as the '=' is really there. The
	// parenthesized part is parsed as full expressions first so that
	// `f(x+1) = x` is rejected with a parameter-list error instead of
	// falling back to a confusing trailing-input error.
	save := p.pos
	nameTok := p.next()
	p.next() // '('

	var params []ast.Expr
	if _, ok := p.eat(token.RParen); !ok {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				p.pos = save
				return nil
			}
			params = append(params, arg)
			if _, ok := p.eat(token.Comma); ok {
				continue
			}
			if _, ok := p.eat(token.RParen); ok {
				break
			}
			p.pos = save
			return nil
		}
	}

	if _, ok := p.eat(token.Assign); !ok {
		// A call expression, not a definition header.
		p.pos = save
		return nil
	}

	def.Name = nameTok.Text
	def.HasParams = true
	def.Params = make([]string, 0, len(params))
	for _, param := range params {
		v, ok := param.(*ast.Variable)
		if !ok {
			return synErr(diag.SynBadParameterList, param.Span(),
				"function definition parameters must be variable names")
		}
		def.Params = append(def.Params, v.Name)
	}
	return nil
}

// ParseParametricPlot parses the range as a parametric-plot line.
func ParseParametricPlot(file *source.File, span source.Span) (*ParamPlotDef, error) {
	p := newParser(file, span)

	open, ok := p.eat(token.LParen)
	if !ok {
		return nil, synErr(diag.SynInvalidSyntax, p.peek().Span, "expected '(' to begin parametric plot")
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.eat(token.Comma); !ok {
		return nil, synErr(diag.SynBadPlotParams, p.peek().Span, "parametric plot expects exactly 2 expressions")
	}
	y, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.eat(token.RParen); !ok {
		return nil, synErr(diag.SynUnclosedParen, open.Span, "expected ')' to close parametric plot expressions")
	}

	bracket, ok := p.eat(token.LBracket)
	if !ok {
		return nil, synErr(diag.SynBadPlotParams, p.peek().Span,
			`parametric plot requires a parameter definition (such as "(cos(t),sin(t))[t,0,1]")`)
	}

	paramTok, ok := p.eat(token.Ident)
	if !ok {
		return nil, synErr(diag.SynExpectIdentifier, p.peek().Span,
			"first parameter of parametric plot must be a variable name")
	}
	if _, ok := p.eat(token.Comma); !ok {
		return nil, synErr(diag.SynBadPlotParams, p.peek().Span, "parametric plot expects 3 parameters")
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.eat(token.Comma); !ok {
		return nil, synErr(diag.SynBadPlotParams, p.peek().Span, "parametric plot expects 3 parameters")
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.eat(token.RBracket); !ok {
		return nil, synErr(diag.SynUnclosedBracket, bracket.Span, "expected ']' to close parametric plot parameters")
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return &ParamPlotDef{X: x, Y: y, Param: paramTok.Text, Start: start, End: end}, nil
}

// ParseEmpty accepts a line holding nothing but whitespace and comments.
func ParseEmpty(file *source.File, span source.Span) error {
	p := newParser(file, span)
	if err := p.expectEOF(); err != nil {
		return err
	}
	return nil
}
