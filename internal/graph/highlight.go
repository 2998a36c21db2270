package graph

import (
	"graphite/internal/eval"
	"graphite/internal/lexer"
	"graphite/internal/token"
)

// SemanticToken is one classified slice of a source line, for editor
// highlighting. Offsets are byte positions within the line.
type SemanticToken struct {
	Start int
	End   int
	Class token.Class
}

var builtinNames = eval.BuiltinNames()

// SemanticTokens classifies one raw source line (directives included) for
// highlighting. Identifiers naming a registered builtin come back as the
// builtin class. Lexing is total, so this never fails; unmatched characters
// come back classified "other".
func SemanticTokens(line string) []SemanticToken {
	toks := lexer.TokenizeLine(line, lexer.Options{})
	out := make([]SemanticToken, 0, len(toks))
	for _, t := range toks {
		class := t.Kind.Class()
		if t.Kind == token.Ident && builtinNames[t.Text] {
			class = token.ClassBuiltin
		}
		out = append(out, SemanticToken{
			Start: int(t.Span.Start),
			End:   int(t.Span.End),
			Class: class,
		})
	}
	return out
}
