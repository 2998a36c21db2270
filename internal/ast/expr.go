// Package ast defines the expression tree produced by the parser.
//
// Nodes are immutable after construction and never hold parent references,
// so rewrite passes may freely share subtrees between the input and output
// trees.
package ast

import (
	"strings"

	"graphite/internal/source"
	"graphite/internal/value"
)

// Expr is one node of an expression tree: a constant, a variable reference,
// or a function call. The set is closed.
type Expr interface {
	Span() source.Span
	// String renders the node back to parseable source text.
	String() string

	exprNode()
}

// Constant is a literal value leaf.
type Constant struct {
	span source.Span
	Val  value.Value
}

// Variable is a name resolved against the context at evaluation time.
type Variable struct {
	span source.Span
	Name string
}

// FunCall applies a named function to ordered arguments. Operators are
// represented as calls too: `a+b` is FunCall("+", a, b), unary minus is
// FunCall("--", a). Arity is checked at evaluation time.
type FunCall struct {
	span source.Span
	Name string
	Args []Expr
}

func NewConstant(sp source.Span, v value.Value) *Constant {
	return &Constant{span: sp, Val: v}
}

func NewVariable(sp source.Span, name string) *Variable {
	return &Variable{span: sp, Name: name}
}

func NewFunCall(sp source.Span, name string, args []Expr) *FunCall {
	return &FunCall{span: sp, Name: name, Args: args}
}

func (c *Constant) Span() source.Span { return c.span }
func (v *Variable) Span() source.Span { return v.span }
func (f *FunCall) Span() source.Span  { return f.span }

func (*Constant) exprNode() {}
func (*Variable) exprNode() {}
func (*FunCall) exprNode()  {}

func (c *Constant) String() string {
	return c.Val.String()
}

func (v *Variable) String() string {
	return v.Name
}

func (f *FunCall) String() string {
	switch f.Name {
	case "+", "-", "*", "/", "**", "^":
		if len(f.Args) == 2 {
			return "(" + f.Args[0].String() + f.Name + f.Args[1].String() + ")"
		}
	case "--":
		if len(f.Args) == 1 {
			return "(-" + f.Args[0].String() + ")"
		}
	}
	var sb strings.Builder
	sb.WriteString(f.Name)
	sb.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Walk calls fn for the node and every descendant, pre-order. It stops
// descending wherever fn returns false.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	if call, ok := e.(*FunCall); ok {
		for _, a := range call.Args {
			Walk(a, fn)
		}
	}
}

// Requirements lists every variable and function name the expression needs
// from its evaluation context, in first-appearance order.
func Requirements(e Expr) []string {
	seen := make(map[string]bool)
	var out []string
	Walk(e, func(n Expr) bool {
		switch n := n.(type) {
		case *Variable:
			if !seen[n.Name] {
				seen[n.Name] = true
				out = append(out, n.Name)
			}
		case *FunCall:
			if !seen[n.Name] {
				seen[n.Name] = true
				out = append(out, n.Name)
			}
		}
		return true
	})
	return out
}
