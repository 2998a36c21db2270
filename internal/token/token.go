package token

import (
	"graphite/internal/source"
)

// Token is one classified lexical unit of a source line.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}
