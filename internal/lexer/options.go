package lexer

import (
	"graphite/internal/diag"
	"graphite/internal/source"
)

type Options struct {
	// Reporter may be nil; lexing never stops on a report.
	Reporter diag.Reporter
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg)
}
