package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"graphite/internal/source"
	"graphite/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Class string      `json:"class"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Class: tok.Kind.Class().String(),
			Text:  tok.Text,
			Span:  tok.Span,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
