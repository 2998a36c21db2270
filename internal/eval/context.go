package eval

import (
	"graphite/internal/value"
)

// Context holds the variables and functions visible to an evaluation.
// Copies are shallow: the maps are duplicated, the values shared. That is
// enough isolation, since values are never mutated in place.
type Context struct {
	vars  map[string]value.Value
	funcs map[string]Function

	// depth counts nested user-function calls, so a self-referential
	// definition fails with a diagnostic instead of exhausting the stack.
	depth int
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{
		vars:  make(map[string]value.Value),
		funcs: make(map[string]Function),
	}
}

// Copy returns an independent shallow copy.
func (c *Context) Copy() *Context {
	out := &Context{
		vars:  make(map[string]value.Value, len(c.vars)),
		funcs: make(map[string]Function, len(c.funcs)),
		depth: c.depth,
	}
	for k, v := range c.vars {
		out.vars[k] = v
	}
	for k, f := range c.funcs {
		out.funcs[k] = f
	}
	return out
}

func (c *Context) Var(name string) (value.Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

func (c *Context) SetVar(name string, v value.Value) {
	c.vars[name] = v
}

func (c *Context) Func(name string) (Function, bool) {
	f, ok := c.funcs[name]
	return f, ok
}

func (c *Context) SetFunc(name string, f Function) {
	c.funcs[name] = f
}
