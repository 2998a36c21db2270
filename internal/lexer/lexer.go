package lexer

import (
	"graphite/internal/source"
	"graphite/internal/token"
)

// Lexer turns one source range into classified tokens. It is total: every
// byte of the input ends up inside some token, and nothing short of an
// internal bug makes it fail.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one token of lookahead
}

// New creates a lexer over the whole file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewRange creates a lexer over a sub-range of the file, typically one line.
func NewRange(file *source.File, span source.Span, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewRangeCursor(file, span),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipSpace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '/' && lx.isCommentStart():
		return lx.scanComment()

	case ch == '#' && lx.isDirectiveStart():
		return lx.scanDirective()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdent()

	case ch == '"':
		return lx.scanQuoted()

	default:
		return lx.scanOperatorOrOther()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipSpace discards whitespace; it is never represented as a token.
func (lx *Lexer) skipSpace() {
	for {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}
		return
	}
}
