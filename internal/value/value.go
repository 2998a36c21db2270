package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the three value shapes.
type Kind uint8

const (
	// KindScalar is a single float64.
	KindScalar Kind = iota
	// KindVector is an ordered array of float64.
	KindVector
	// KindSequence is an ordered, possibly nested, list of values.
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindVector:
		return "Vector"
	case KindSequence:
		return "Sequence"
	}
	return "Unknown"
}

// Value is the closed union of the three shapes. All arithmetic goes through
// Apply, which dispatches on the operand kinds; the union is sealed so the
// dispatch matrix stays exhaustive.
type Value interface {
	Kind() Kind
	// Apply applies the named operation with the receiver as first operand.
	Apply(op string, rest []Value) (Value, error)
	// AsInteger rounds every number in the value to the nearest integer.
	AsInteger() Value
	String() string

	sealed()
}

// Scalar is a single number.
type Scalar float64

// Vector is an array of numbers combined elementwise.
type Vector []float64

// Sequence is a heterogeneous ordered list; operations map across its items.
type Sequence []Value

func (Scalar) Kind() Kind   { return KindScalar }
func (Vector) Kind() Kind   { return KindVector }
func (Sequence) Kind() Kind { return KindSequence }

func (Scalar) sealed()   {}
func (Vector) sealed()   {}
func (Sequence) sealed() {}

func (s Scalar) Apply(op string, rest []Value) (Value, error) {
	return Apply(op, prepend(s, rest)...)
}

func (v Vector) Apply(op string, rest []Value) (Value, error) {
	return Apply(op, prepend(v, rest)...)
}

func (q Sequence) Apply(op string, rest []Value) (Value, error) {
	return Apply(op, prepend(q, rest)...)
}

func prepend(v Value, rest []Value) []Value {
	args := make([]Value, 0, len(rest)+1)
	args = append(args, v)
	return append(args, rest...)
}

func (s Scalar) AsInteger() Value {
	return Scalar(math.Round(float64(s)))
}

func (v Vector) AsInteger() Value {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = math.Round(x)
	}
	return out
}

func (q Sequence) AsInteger() Value {
	out := make(Sequence, len(q))
	for i, item := range q {
		out[i] = item.AsInteger()
	}
	return out
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (q Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range q {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Linspace returns n evenly spaced samples from start to stop, both
// endpoints included.
func Linspace(start, stop float64, n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	out := make(Vector, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// LinspaceOpen returns n evenly spaced samples over the half-open interval
// [start, stop).
func LinspaceOpen(start, stop float64, n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	out := make(Vector, n)
	step := (stop - start) / float64(n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// ZerosLike returns a value with v's shape and every element zero. Adding
// it to another value broadcasts that value to v's shape.
func ZerosLike(v Value) Value {
	switch v := v.(type) {
	case Vector:
		return make(Vector, len(v))
	case Sequence:
		out := make(Sequence, len(v))
		for i, item := range v {
			out[i] = ZerosLike(item)
		}
		return out
	default:
		return Scalar(0)
	}
}
