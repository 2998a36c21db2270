package parser

import (
	"strconv"

	"graphite/internal/ast"
	"graphite/internal/diag"
	"graphite/internal/source"
	"graphite/internal/token"
	"graphite/internal/value"
)

// Binary operator precedence, tightest binding highest. Unary minus sits
// between multiplication and power: -x*y is (-x)*y but -x^2 is -(x^2).
const (
	precAdd   = 1
	precMul   = 2
	precPower = 3
)

func binaryPrec(k token.Kind) int {
	switch k {
	case token.Plus, token.Minus:
		return precAdd
	case token.Star, token.Slash:
		return precMul
	case token.StarStar, token.Caret:
		return precPower
	default:
		return 0
	}
}

// ParseExpression parses the whole range as one expression.
func ParseExpression(file *source.File, span source.Span) (ast.Expr, error) {
	p := newParser(file, span)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseExpr() (ast.Expr, *SyntaxError) {
	return p.parseBinaryExpr(precAdd)
}

// parseBinaryExpr is a Pratt loop over the left-associative binary
// operators at or above minPrec.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, *SyntaxError) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		prec := binaryPrec(tok.Kind)
		if prec == 0 || prec < minPrec {
			break
		}

		opTok := p.next()

		right, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return nil, err
		}

		span := left.Span().Cover(right.Span())
		left = ast.NewFunCall(span, opTok.Text, []ast.Expr{left, right})
	}

	return left, nil
}

// parseUnaryExpr handles prefix minus, rewritten as FunCall("--", operand).
func (p *Parser) parseUnaryExpr() (ast.Expr, *SyntaxError) {
	if minus, ok := p.eat(token.Minus); ok {
		operand, err := p.parseBinaryExpr(precPower)
		if err != nil {
			return nil, err
		}
		span := minus.Span.Cover(operand.Span())
		return ast.NewFunCall(span, "--", []ast.Expr{operand}), nil
	}
	return p.parsePrimary()
}

// parsePrimary handles the atoms: number, call, variable, parenthesized
// expression. A bare identifier followed by '(' is always a call.
func (p *Parser) parsePrimary() (ast.Expr, *SyntaxError) {
	tok := p.peek()

	switch tok.Kind {
	case token.Number:
		p.next()
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, synErr(diag.SynUnexpectedToken, tok.Span, "malformed number %q", tok.Text)
		}
		return ast.NewConstant(tok.Span, value.Scalar(f)), nil

	case token.Ident:
		p.next()
		if _, ok := p.eat(token.LParen); !ok {
			return ast.NewVariable(tok.Span, tok.Text), nil
		}
		args, rparen, err := p.parseArgs(tok.Span)
		if err != nil {
			return nil, err
		}
		return ast.NewFunCall(tok.Span.Cover(rparen), tok.Text, args), nil

	case token.LParen:
		open := p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, ok := p.eat(token.RParen); !ok {
			return nil, synErr(diag.SynUnclosedParen, open.Span, "expected ')' to close '('")
		}
		return expr, nil

	case token.EOF:
		return nil, synErr(diag.SynExpectExpression, tok.Span, "expected expression, found end of line")

	default:
		return nil, synErr(diag.SynExpectExpression, tok.Span, "expected expression, found %q", tok.Text)
	}
}

// parseArgs parses the comma-separated argument list of a call, after the
// opening parenthesis was consumed. A call takes at least one argument.
func (p *Parser) parseArgs(open source.Span) ([]ast.Expr, source.Span, *SyntaxError) {
	var args []ast.Expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, source.Span{}, err
		}
		args = append(args, arg)
		if _, ok := p.eat(token.Comma); ok {
			continue
		}
		if rparen, ok := p.eat(token.RParen); ok {
			return args, rparen.Span, nil
		}
		return nil, source.Span{}, synErr(diag.SynUnclosedParen, open, "expected ',' or ')' in argument list")
	}
}
