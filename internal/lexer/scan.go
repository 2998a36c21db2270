package lexer

import (
	"graphite/internal/diag"
	"graphite/internal/token"
)

func (lx *Lexer) emit(k token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: k,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanNumber scans a numeric literal: optional integer part, optional
// decimal point, digits. A trailing dot with no digit after it is not part
// of the number ("12." lexes as Number(12) + Other(.)), matching the grammar.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Eat('.') {
		// ".5" form; the caller guaranteed a digit follows.
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Number, start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.isNumberAfterDot() {
		lx.cursor.Eat('.')
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.emit(token.Number, start)
}

// scanIdent scans an identifier: letter or underscore, then letters, digits,
// or underscores. Unicode letters are accepted.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || (r < utf8RuneSelf && !isIdentStartByte(byte(r))) || (r >= utf8RuneSelf && !isIdentStartRune(r)) {
		return lx.scanOperatorOrOther()
	}

	lx.bumpRune()
	for {
		r2, sz2 := lx.peekRune()
		if sz2 == 0 {
			break
		}
		if r2 < utf8RuneSelf {
			if !isIdentContinueByte(byte(r2)) {
				break
			}
		} else if !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	return lx.emit(token.Ident, start)
}

// scanComment consumes "//" and everything up to the end of the range.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.emit(token.Comment, start)
}

// scanDirective consumes '#' plus the directive word. The optional ="value"
// tail is handled by the preprocessor, not here; for highlighting purposes
// the word alone is the directive token.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Directive, start)
}

// scanQuoted consumes a double-quoted string with \" escapes. An
// unterminated string is reported as a warning and still yields a Quoted
// token covering the rest of the range, so highlighting degrades gracefully.
func (lx *Lexer) scanQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.emit(token.Quoted, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.warn(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Quoted, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanOperatorOrOther scans the fixed operator set; anything else becomes a
// single-rune Other token. Never an error.
func (lx *Lexer) scanOperatorOrOther() token.Token {
	start := lx.cursor.Mark()

	if lx.try2('*', '*') {
		return lx.emit(token.StarStar, start)
	}

	ch := lx.cursor.Peek()
	switch ch {
	case '+':
		lx.cursor.Bump()
		return lx.emit(token.Plus, start)
	case '-':
		lx.cursor.Bump()
		return lx.emit(token.Minus, start)
	case '*':
		lx.cursor.Bump()
		return lx.emit(token.Star, start)
	case '/':
		lx.cursor.Bump()
		return lx.emit(token.Slash, start)
	case '^':
		lx.cursor.Bump()
		return lx.emit(token.Caret, start)
	case '=':
		lx.cursor.Bump()
		return lx.emit(token.Assign, start)
	case ',':
		lx.cursor.Bump()
		return lx.emit(token.Comma, start)
	case '(':
		lx.cursor.Bump()
		return lx.emit(token.LParen, start)
	case ')':
		lx.cursor.Bump()
		return lx.emit(token.RParen, start)
	case '[':
		lx.cursor.Bump()
		return lx.emit(token.LBracket, start)
	case ']':
		lx.cursor.Bump()
		return lx.emit(token.RBracket, start)
	default:
		lx.bumpRune()
		return lx.emit(token.Other, start)
	}
}
