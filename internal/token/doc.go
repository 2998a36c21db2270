// Package token defines lexical token kinds for graphite plot lines.
// Invariants:
//   - Token.Text is the exact source slice the token covers.
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace is never represented: concatenating token texts reproduces
//     the input modulo runs of spaces and tabs.
//   - Characters outside the grammar become single Other tokens, never errors.
package token
