package lexer

import (
	"graphite/internal/source"
	"graphite/internal/token"
)

// Collect drains the lexer, returning every token up to but excluding EOF.
func Collect(lx *Lexer) []token.Token {
	toks := make([]token.Token, 0, 16)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// TokenizeLine classifies one line of text. Offsets in the returned spans
// are 0-based positions within the line. Diagnostics, if any, go through
// opts.Reporter.
func TokenizeLine(line string, opts Options) []token.Token {
	fs := source.NewFileSet()
	id := fs.AddVirtual("line", []byte(line))
	return Collect(New(fs.Get(id), opts))
}
