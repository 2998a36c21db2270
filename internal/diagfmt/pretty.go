package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"graphite/internal/diag"
	"graphite/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgRed)
	noteColor    = color.New(color.FgBlue)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeNote(w, fs, n, opts)
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, sp source.Span, msg string, opts PrettyOpts) {
	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", location(fs, sp, opts.PathMode), sevText, code.ID(), msg)
}

// writeContext prints the source line under the heading with a ^~~~ marker
// aligned to the span. Alignment uses display width, so wide runes in the
// line do not skew the caret.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" && start.Line == 0 {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	from := cut(line, int(start.Col)-1)
	prefixWidth := runewidth.StringWidth(from)
	spanWidth := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanWidth = runewidth.StringWidth(cut(line, int(end.Col)-1)[len(from):])
	}
	if spanWidth < 1 {
		spanWidth = 1
	}

	marker := "^" + strings.Repeat("~", spanWidth-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", prefixWidth), marker)
}

func writeNote(w io.Writer, fs *source.FileSet, n diag.Note, opts PrettyOpts) {
	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	fmt.Fprintf(w, "  %s: %s: %s\n", location(fs, n.Span, opts.PathMode), label, n.Msg)
}

// location renders a span as path:line:col.
func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(file.Path, mode), start.Line, start.Col)
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	default:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
				return rel
			}
		}
		if mode == PathModeRelative {
			return path
		}
		return path
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// cut returns at most n bytes of s, guarding against short lines.
func cut(s string, n int) string {
	if n < 0 {
		return ""
	}
	if n > len(s) {
		return s
	}
	return s[:n]
}
