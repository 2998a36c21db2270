// Package preproc strips plot directives out of a source line before it
// reaches the parser. Directives annotate how a line is rendered (`#hide`,
// `#color="red"`, a bare "legend label"); they never change what the line
// computes.
package preproc

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"graphite/internal/diag"
	"graphite/internal/lexer"
	"graphite/internal/token"
)

// LabelKey is the key assigned to a bare quoted string.
const LabelKey = "label"

// Directive is one extracted annotation. Start and End are byte offsets
// into the original line, covering the whole form including any `="value"`
// part.
type Directive struct {
	Key   string
	Value string
	Start int
	End   int
}

// Options configures directive extraction.
type Options struct {
	// Reporter receives lexical warnings (such as an unterminated quoted
	// value). May be nil.
	Reporter diag.Reporter
}

// Process extracts every directive from one source line, left to right.
// Recognized forms are `#key`, `#key="value"`, and a bare `"label"`.
//
// The cleaned text has the same length as the input: directive bytes are
// replaced with spaces, so token offsets produced by later stages still
// point into the user's original line.
func Process(line string, opts Options) (string, []Directive) {
	toks := lexer.TokenizeLine(line, lexer.Options{Reporter: opts.Reporter})

	clean := []byte(line)
	var dirs []Directive

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.Kind {
		case token.Directive:
			d := Directive{
				Key:   t.Text[1:],
				Start: int(t.Span.Start),
				End:   int(t.Span.End),
			}
			if i+2 < len(toks) && toks[i+1].Kind == token.Assign && toks[i+2].Kind == token.Quoted {
				d.Value = unquote(toks[i+2].Text)
				d.End = int(toks[i+2].Span.End)
				i += 2
			}
			blank(clean, d.Start, d.End)
			dirs = append(dirs, d)

		case token.Quoted:
			d := Directive{
				Key:   LabelKey,
				Value: unquote(t.Text),
				Start: int(t.Span.Start),
				End:   int(t.Span.End),
			}
			blank(clean, d.Start, d.End)
			dirs = append(dirs, d)
		}
	}

	return string(clean), dirs
}

// Find returns the last directive with the given key, matching the
// last-one-wins rule for repeated directives.
func Find(dirs []Directive, key string) (Directive, bool) {
	for i := len(dirs) - 1; i >= 0; i-- {
		if dirs[i].Key == key {
			return dirs[i], true
		}
	}
	return Directive{}, false
}

// Has reports whether any directive with the given key is present.
func Has(dirs []Directive, key string) bool {
	_, ok := Find(dirs, key)
	return ok
}

func blank(buf []byte, start, end int) {
	for i := start; i < end && i < len(buf); i++ {
		buf[i] = ' '
	}
}

// unquote strips the surrounding quotes (the closing one may be missing on
// an unterminated string), resolves `\"` and `\\` escapes, and normalizes
// the result to NFC so labels compare consistently regardless of how the
// editor encoded them.
func unquote(text string) string {
	body := strings.TrimPrefix(text, `"`)
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) && (body[i+1] == '"' || body[i+1] == '\\') {
			i++
			sb.WriteByte(body[i])
			continue
		}
		if c == '"' {
			break
		}
		sb.WriteByte(c)
	}
	return norm.NFC.String(sb.String())
}
