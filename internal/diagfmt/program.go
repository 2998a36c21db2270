package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"graphite/internal/ast"
	"graphite/internal/graph"
)

type LineOutput struct {
	Index      int               `json:"index"`
	Kind       string            `json:"kind"`
	Name       string            `json:"name,omitempty"`
	Params     []string          `json:"params,omitempty"`
	Polar      bool              `json:"polar,omitempty"`
	Render     string            `json:"render,omitempty"`
	Uses       []string          `json:"uses,omitempty"`
	Error      string            `json:"error,omitempty"`
	Directives map[string]string `json:"directives,omitempty"`
}

// FormatProgramPretty выводит скомпилированную программу построчно
func FormatProgramPretty(w io.Writer, prog *graph.Program) error {
	for i, line := range prog.Lines {
		out := describeLine(i, line)
		fmt.Fprintf(w, "%3d: %-10s", out.Index, out.Kind)
		switch {
		case out.Error != "":
			fmt.Fprintf(w, " %s", out.Error)
		case out.Render != "":
			fmt.Fprintf(w, " %s", out.Render)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatProgramJSON выводит скомпилированную программу в JSON формате
func FormatProgramJSON(w io.Writer, prog *graph.Program) error {
	output := make([]LineOutput, 0, len(prog.Lines))
	for i, line := range prog.Lines {
		output = append(output, describeLine(i, line))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func describeLine(i int, line graph.Line) LineOutput {
	out := LineOutput{Index: i + 1}
	for _, d := range line.Directives {
		if out.Directives == nil {
			out.Directives = make(map[string]string)
		}
		out.Directives[d.Key] = d.Value
	}
	if line.Err != nil {
		out.Kind = "error"
		out.Error = line.Err.Error()
		return out
	}
	switch c := line.Compiled.(type) {
	case graph.EmptyLine:
		out.Kind = "empty"
	case *graph.FunctionDefinition:
		out.Kind = "definition"
		out.Name = c.Name
		out.Params = c.Fn.Params
		out.Polar = c.Polar
		out.Render = renderDefinition(c)
		out.Uses = contextUses(c.Fn.Params, c.Fn.Body)
	case *graph.ParamPlot:
		out.Kind = "plot"
		out.Name = c.Param
		out.Render = fmt.Sprintf("(%s, %s) for %s in [%s, %s]",
			c.X, c.Y, c.Param, c.Start, c.End)
		out.Uses = contextUses([]string{c.Param}, c.X, c.Y, c.Start, c.End)
	}
	return out
}

// contextUses lists the names a line resolves from the evaluation context:
// everything its expressions require minus its own parameters.
func contextUses(params []string, exprs ...ast.Expr) []string {
	bound := make(map[string]bool, len(params))
	for _, p := range params {
		bound[p] = true
	}
	seen := make(map[string]bool)
	var out []string
	for _, e := range exprs {
		for _, name := range ast.Requirements(e) {
			if bound[name] || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func renderDefinition(def *graph.FunctionDefinition) string {
	head := def.Name
	if head == "" {
		head = "<anonymous>"
	}
	return fmt.Sprintf("%s(%s) = %s", head, strings.Join(def.Fn.Params, ", "), def.Fn.Body)
}
