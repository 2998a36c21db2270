package lexer_test

import (
	"strings"
	"testing"

	"graphite/internal/diag"
	"graphite/internal/lexer"
	"graphite/internal/source"
	"graphite/internal/token"
)

// makeTestLexer builds a lexer over a virtual one-line file.
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.gr", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	opts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}
	return lexer.New(file, opts), bag
}

// expectTokens checks the token kind sequence for an input.
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := lexer.Collect(lx)

	if len(tokens) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d: %v", input, len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i].Kind != want {
			t.Errorf("input %q: token %d: expected %v, got %v (%q)", input, i, want, tokens[i].Kind, tokens[i].Text)
		}
	}
	return tokens
}

func TestTokenKinds(t *testing.T) {
	cases := []struct {
		input    string
		expected []token.Kind
	}{
		{"sin(x)", []token.Kind{token.Ident, token.LParen, token.Ident, token.RParen}},
		{"3.14", []token.Kind{token.Number}},
		{".5", []token.Kind{token.Number}},
		{"12.", []token.Kind{token.Number, token.Other}},
		{"x ** 2", []token.Kind{token.Ident, token.StarStar, token.Number}},
		{"x ^ 2", []token.Kind{token.Ident, token.Caret, token.Number}},
		{"f(a, b) = a - b", []token.Kind{
			token.Ident, token.LParen, token.Ident, token.Comma, token.Ident,
			token.RParen, token.Assign, token.Ident, token.Minus, token.Ident,
		}},
		{"(cos(t),sin(t))[t,0,6.283]", []token.Kind{
			token.LParen, token.Ident, token.LParen, token.Ident, token.RParen,
			token.Comma, token.Ident, token.LParen, token.Ident, token.RParen,
			token.RParen, token.LBracket, token.Ident, token.Comma, token.Number,
			token.Comma, token.Number, token.RBracket,
		}},
		{"// whole line comment", []token.Kind{token.Comment}},
		{"x + 1 // trailing", []token.Kind{token.Ident, token.Plus, token.Number, token.Comment}},
		{"#red #dashed y=x", []token.Kind{
			token.Directive, token.Directive, token.Ident, token.Assign, token.Ident,
		}},
		{`"a label"`, []token.Kind{token.Quoted}},
		{"x @ y", []token.Kind{token.Ident, token.Other, token.Ident}},
		{"# x", []token.Kind{token.Other, token.Ident}},
		{"", []token.Kind{}},
		{"   \t ", []token.Kind{}},
	}

	for _, tc := range cases {
		expectTokens(t, tc.input, tc.expected)
	}
}

// Single-token numeric literals span the whole literal.
func TestNumberSpansWholeLiteral(t *testing.T) {
	for _, lit := range []string{"0", "7", "42", "3.14", "0.001", ".5", "1000.25"} {
		lx, _ := makeTestLexer(lit)
		tokens := lexer.Collect(lx)
		if len(tokens) != 1 {
			t.Fatalf("literal %q: expected 1 token, got %d", lit, len(tokens))
		}
		tok := tokens[0]
		if tok.Kind != token.Number {
			t.Errorf("literal %q: expected Number, got %v", lit, tok.Kind)
		}
		if tok.Text != lit || tok.Span.Start != 0 || int(tok.Span.End) != len(lit) {
			t.Errorf("literal %q: token %q spans %d..%d", lit, tok.Text, tok.Span.Start, tok.Span.End)
		}
	}
}

// Tokens tile the input: only the whitespace between tokens is discarded,
// and every token's text matches the source bytes its span covers. Interior
// whitespace (inside a comment, say) survives.
func TestRoundTripModuloWhitespace(t *testing.T) {
	inputs := []string{
		"sin(x)+3.14*y-2/z #red #dashed // comment",
		"f(x)=x**2-1",
		"-x^2 + 4,?",
	}
	for _, input := range inputs {
		lx, _ := makeTestLexer(input)
		prevEnd := 0
		for _, tok := range lexer.Collect(lx) {
			if gap := input[prevEnd:tok.Span.Start]; strings.Trim(gap, " \t") != "" {
				t.Errorf("input %q: dropped non-whitespace %q before token %q", input, gap, tok.Text)
			}
			if src := input[tok.Span.Start:tok.Span.End]; tok.Text != src {
				t.Errorf("input %q: token text %q differs from its source %q", input, tok.Text, src)
			}
			prevEnd = int(tok.Span.End)
		}
		if tail := input[prevEnd:]; strings.Trim(tail, " \t") != "" {
			t.Errorf("input %q: trailing %q never tokenized", input, tail)
		}
	}
}

func TestTokenOffsets(t *testing.T) {
	toks := expectTokens(t, "a + 12", []token.Kind{token.Ident, token.Plus, token.Number})
	wantStarts := []uint32{0, 2, 4}
	for i, s := range wantStarts {
		if toks[i].Span.Start != s {
			t.Errorf("token %d: expected start %d, got %d", i, s, toks[i].Span.Start)
		}
	}
}

func TestUnterminatedStringWarnsButLexes(t *testing.T) {
	lx, bag := makeTestLexer(`"oops`)
	tokens := lexer.Collect(lx)
	if len(tokens) != 1 || tokens[0].Kind != token.Quoted {
		t.Fatalf("expected a single Quoted token, got %v", tokens)
	}
	if !bag.HasWarnings() {
		t.Error("expected an unterminated-string warning")
	}
	if bag.HasErrors() {
		t.Error("lexing must not produce hard errors")
	}
}

func TestRangeLexing(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.gr", []byte("sin(x)\ncos(x)\n"))
	f := fs.Get(id)

	lx := lexer.NewRange(f, f.LineSpan(2), lexer.Options{})
	tokens := lexer.Collect(lx)
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens on line 2, got %d", len(tokens))
	}
	if tokens[0].Text != "cos" || tokens[0].Span.Start != 7 {
		t.Errorf("expected cos at offset 7, got %q at %d", tokens[0].Text, tokens[0].Span.Start)
	}
}
