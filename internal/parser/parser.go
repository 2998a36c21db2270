// Package parser turns token streams into expression trees and classified
// line headers. Every entry point must consume its whole input: partial
// parses are syntax errors, never silent truncation.
package parser

import (
	"fmt"

	"graphite/internal/diag"
	"graphite/internal/lexer"
	"graphite/internal/source"
	"graphite/internal/token"
)

// SyntaxError is the only error kind the parser produces. It carries the
// diagnostic code and span so the caller can decide where (and whether) to
// report it; trying several line shapes in turn must not spam the bag with
// diagnostics from discarded attempts.
type SyntaxError struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *SyntaxError) Error() string { return e.Msg }

func synErr(code diag.Code, sp source.Span, format string, args ...any) *SyntaxError {
	return &SyntaxError{Code: code, Span: sp, Msg: fmt.Sprintf(format, args...)}
}

// Parser holds the token stream of one line. Comments are filtered out
// before parsing; the grammar never sees them.
type Parser struct {
	toks []token.Token
	pos  int
	end  source.Span // empty span after the last token, for EOF diagnostics
}

// newParser lexes the given range and filters comment tokens.
func newParser(file *source.File, span source.Span) *Parser {
	lx := lexer.NewRange(file, span, lexer.Options{})
	all := lexer.Collect(lx)
	toks := all[:0]
	for _, t := range all {
		if t.Kind == token.Comment {
			continue
		}
		toks = append(toks, t)
	}
	return &Parser{
		toks: toks,
		end:  source.Span{File: file.ID, Start: span.End, End: span.End},
	}
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.end}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(ahead int) token.Token {
	if p.pos+ahead >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.end}
	}
	return p.toks[p.pos+ahead]
}

func (p *Parser) next() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.next(), true
	}
	return token.Token{}, false
}

// expectEOF rejects trailing input: the whole line must be consumed.
func (p *Parser) expectEOF() *SyntaxError {
	if t := p.peek(); t.Kind != token.EOF {
		return synErr(diag.SynTrailingInput, t.Span, "unexpected %q after expression", t.Text)
	}
	return nil
}
