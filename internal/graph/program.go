package graph

import (
	"math"

	"graphite/internal/ast"
	"graphite/internal/deriv"
	"graphite/internal/diag"
	"graphite/internal/eval"
	"graphite/internal/parser"
	"graphite/internal/preproc"
	"graphite/internal/source"
	"graphite/internal/value"
)

// DefaultSamples is the parameter sample count for parametric plots.
const DefaultSamples = 1000

// Options configures compilation and execution.
type Options struct {
	// Samples is the parametric-plot sample count; zero means
	// DefaultSamples.
	Samples int
	// Reporter receives compile and evaluation diagnostics with spans
	// rebased into the program's file. May be nil.
	Reporter diag.Reporter
}

// Line is one source line with its compilation outcome. Err and Compiled
// are mutually exclusive.
type Line struct {
	Text       string
	Directives []preproc.Directive
	Compiled   CompiledLine
	Err        error
}

// Program is an ordered list of compiled lines, recompiled in full whenever
// the source changes.
type Program struct {
	file  *source.File
	opts  Options
	Lines []Line
}

// Compile preprocesses, classifies, and parses every line of the file. Line
// failures land in the per-line error slot; compilation always covers the
// whole file.
func Compile(file *source.File, opts Options) *Program {
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	p := &Program{file: file, opts: opts}

	n := file.LineCount()
	p.Lines = make([]Line, n)
	for i := uint32(1); i <= n; i++ {
		base := file.LineSpan(i)
		text := file.GetLine(i)

		clean, dirs := preproc.Process(text, preproc.Options{
			Reporter: rebased(opts.Reporter, base),
		})

		ln := Line{Text: text, Directives: dirs}
		compiled, err := CompileLine(clean)
		if err != nil {
			ln.Err = err
			p.report(base, err)
		} else {
			ln.Compiled = compiled
		}
		p.Lines[i-1] = ln
	}
	return p
}

// Samples is one line's plottable output.
type Samples struct {
	X, Y value.Vector
}

// LineResult is the outcome of evaluating one line. A line yields at most
// one of: sample data, a direct result string, or an error.
type LineResult struct {
	Directives []preproc.Directive
	Hidden     bool
	Samples    *Samples
	Direct     string
	Err        error
}

// Result holds one evaluation pass over the whole program, index-aligned
// with Program.Lines.
type Result struct {
	Lines []LineResult
}

// Execute evaluates the compiled program over the given x-axis domain.
// Definitions register in source order, so a later line may use names from
// earlier lines but never the reverse. Each call starts from a fresh copy of
// the builtin context.
func (p *Program) Execute(domain value.Vector) *Result {
	ctx := eval.Builtins()
	out := &Result{Lines: make([]LineResult, len(p.Lines))}

	for i := range p.Lines {
		ln := &p.Lines[i]
		res := LineResult{
			Directives: ln.Directives,
			Hidden:     preproc.Has(ln.Directives, "hide"),
		}
		if ln.Err != nil {
			res.Err = ln.Err
			out.Lines[i] = res
			continue
		}

		switch c := ln.Compiled.(type) {
		case *FunctionDefinition:
			p.execDefinition(ctx, c, domain, &res)
		case *ParamPlot:
			p.execParamPlot(ctx, c, &res)
		}

		if res.Err != nil {
			p.report(p.file.LineSpan(uint32(i+1)), res.Err)
		}
		if res.Hidden {
			res.Samples = nil
		}
		out.Lines[i] = res
	}
	return out
}

// execDefinition registers the definition and, for single-parameter
// functions, samples it over the domain. The result value also binds as a
// variable under the function's name, so `f(x) = ...` followed by `f+1`
// works on the sampled curve.
func (p *Program) execDefinition(ctx *eval.Context, def *FunctionDefinition, domain value.Vector, res *LineResult) {
	if def.Name != "" {
		ctx.SetFunc(def.Name, def.Fn)
	}

	switch len(def.Fn.Params) {
	case 0:
		call := ast.NewFunCall(source.Span{}, def.Name, nil)
		v, err := def.Fn.Call(ctx, call)
		if err != nil {
			res.Err = err
			return
		}
		if def.Name != "" {
			ctx.SetVar(def.Name, v)
		}
		res.Direct = v.String()

	case 1:
		pname := def.Fn.Params[0]
		t := domain
		if def.Polar {
			t = value.LinspaceOpen(0, 2*math.Pi, len(domain))
		}

		inner := ctx.Copy()
		inner.SetVar(pname, t)
		call := ast.NewFunCall(source.Span{}, def.Name, []ast.Expr{
			ast.NewVariable(source.Span{}, pname),
		})
		v, err := def.Fn.Call(inner, call)
		if err != nil {
			res.Err = err
			return
		}
		if def.Name != "" {
			ctx.SetVar(def.Name, v)
		}

		vec, ok := v.(value.Vector)
		if !ok {
			res.Direct = v.String()
			return
		}
		if def.Polar {
			res.Samples, res.Err = polarSamples(vec, t)
			return
		}
		res.Samples = &Samples{X: t, Y: vec}

	default:
		// Registered for later lines; nothing to sample.
	}
}

// polarSamples converts (radius, theta) into cartesian coordinates.
func polarSamples(radius, theta value.Vector) (*Samples, error) {
	cosT, err := value.Apply("cos", theta)
	if err != nil {
		return nil, err
	}
	sinT, err := value.Apply("sin", theta)
	if err != nil {
		return nil, err
	}
	x, err := value.Apply("mul", radius, cosT)
	if err != nil {
		return nil, err
	}
	y, err := value.Apply("mul", radius, sinT)
	if err != nil {
		return nil, err
	}
	return &Samples{X: x.(value.Vector), Y: y.(value.Vector)}, nil
}

func (p *Program) execParamPlot(ctx *eval.Context, pp *ParamPlot, res *LineResult) {
	start, err := p.plotBound(ctx, pp.Start)
	if err != nil {
		res.Err = err
		return
	}
	end, err := p.plotBound(ctx, pp.End)
	if err != nil {
		res.Err = err
		return
	}

	t := value.Linspace(start, end, p.opts.Samples)
	inner := ctx.Copy()
	inner.SetVar(pp.Param, t)

	xs, err := sampleExpr(pp.X, inner, t)
	if err != nil {
		res.Err = err
		return
	}
	ys, err := sampleExpr(pp.Y, inner, t)
	if err != nil {
		res.Err = err
		return
	}
	res.Samples = &Samples{X: xs, Y: ys}
}

// plotBound evaluates a parametric-plot bound, which must reduce to a
// scalar.
func (p *Program) plotBound(ctx *eval.Context, e ast.Expr) (float64, error) {
	v, err := eval.Eval(e, ctx)
	if err != nil {
		return 0, err
	}
	s, ok := v.(value.Scalar)
	if !ok {
		return 0, &eval.Error{
			Code: diag.EvalBadPlotBound,
			Span: e.Span(),
			Msg:  "parametric plot bound must be a scalar, got " + v.Kind().String(),
		}
	}
	return float64(s), nil
}

// sampleExpr evaluates one parametric coordinate expression over the
// parameter vector, broadcasting scalar results to the sample shape.
func sampleExpr(e ast.Expr, ctx *eval.Context, t value.Vector) (value.Vector, error) {
	v, err := eval.Eval(e, ctx)
	if err != nil {
		return nil, err
	}
	v, err = value.Apply("add", v, value.ZerosLike(t))
	if err != nil {
		return nil, err
	}
	vec, ok := v.(value.Vector)
	if !ok {
		return nil, &eval.Error{
			Code: diag.EvalShapeError,
			Span: e.Span(),
			Msg:  "parametric plot expression must produce numeric samples, got " + v.Kind().String(),
		}
	}
	return vec, nil
}

// report forwards a line failure to the configured reporter, rebasing the
// error's line-local span into the program's file.
func (p *Program) report(base source.Span, err error) {
	if p.opts.Reporter == nil {
		return
	}
	code, sp := diag.SynInvalidSyntax, base
	switch e := err.(type) {
	case *parser.SyntaxError:
		code, sp = e.Code, rebaseSpan(base, e.Span)
	case *deriv.Error:
		code, sp = e.Code, rebaseSpan(base, e.Span)
	case *eval.Error:
		code, sp = e.Code, rebaseSpan(base, e.Span)
	}
	diag.ReportError(p.opts.Reporter, code, sp, err.Error())
}

// rebaseSpan translates a span relative to a line into the file holding
// that line. The cleaned text the parser saw has the same byte offsets as
// the original line, so the translation is a plain shift.
func rebaseSpan(base source.Span, sp source.Span) source.Span {
	return source.Span{
		File:  base.File,
		Start: base.Start + sp.Start,
		End:   base.Start + sp.End,
	}
}

// rebased wraps a reporter so spans shift into the given line. A nil
// reporter stays nil.
func rebased(r diag.Reporter, base source.Span) diag.Reporter {
	if r == nil {
		return nil
	}
	return rebaseReporter{inner: r, base: base}
}

type rebaseReporter struct {
	inner diag.Reporter
	base  source.Span
}

func (r rebaseReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.inner.Report(code, sev, rebaseSpan(r.base, primary), msg, notes)
}
