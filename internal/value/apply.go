package value

import (
	"fmt"
	"strings"
)

// Apply dispatches the named operation over the operand kinds:
//
//   - all Scalar operands produce a Scalar;
//   - Vector operands combine elementwise, Scalars broadcasting over every
//     element; vectors of unequal length are an error;
//   - any Sequence operand maps the operation across its items, recursively,
//     index-aligned against other Sequences; unequal lengths are an error.
//
// Unknown operations and wrong operand counts report the operation name and
// the operand kinds, since this is the message users see when they misuse a
// function.
func Apply(op string, args ...Value) (Value, error) {
	k, ok := kernels[op]
	if !ok {
		return nil, fmt.Errorf("unsupported operation %q on %s", op, kindList(args))
	}
	if len(args) != k.arity {
		return nil, fmt.Errorf("operation %q expects %d operands, got %d", op, k.arity, len(args))
	}
	return dispatch(op, k, args)
}

func dispatch(op string, k kernel, args []Value) (Value, error) {
	// Sequences map recursively; the other operands ride along unchanged.
	if seqLen, err := sequenceLength(op, args); err != nil {
		return nil, err
	} else if seqLen >= 0 {
		out := make(Sequence, seqLen)
		for i := 0; i < seqLen; i++ {
			item := make([]Value, len(args))
			for j, a := range args {
				if q, isSeq := a.(Sequence); isSeq {
					item[j] = q[i]
				} else {
					item[j] = a
				}
			}
			r, err := dispatch(op, k, item)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}

	// Vectors combine elementwise; scalars broadcast.
	if vecLen, err := vectorLength(args); err != nil {
		return nil, err
	} else if vecLen >= 0 {
		out := make(Vector, vecLen)
		elem := make([]float64, len(args))
		for i := 0; i < vecLen; i++ {
			for j, a := range args {
				switch a := a.(type) {
				case Vector:
					elem[j] = a[i]
				case Scalar:
					elem[j] = float64(a)
				}
			}
			out[i] = k.fn(elem)
		}
		return out, nil
	}

	// All scalars.
	elem := make([]float64, len(args))
	for j, a := range args {
		elem[j] = float64(a.(Scalar))
	}
	return Scalar(k.fn(elem)), nil
}

// sequenceLength returns the shared length of all Sequence operands, -1 when
// there are none, or an error on an index misalignment.
func sequenceLength(op string, args []Value) (int, error) {
	n := -1
	for _, a := range args {
		q, ok := a.(Sequence)
		if !ok {
			continue
		}
		if n < 0 {
			n = len(q)
		} else if len(q) != n {
			return 0, fmt.Errorf("operation %q: sequence length mismatch: %d and %d", op, n, len(q))
		}
	}
	return n, nil
}

// vectorLength returns the shared length of all Vector operands, -1 when
// there are none, or an error on a length mismatch.
func vectorLength(args []Value) (int, error) {
	n := -1
	for _, a := range args {
		v, ok := a.(Vector)
		if !ok {
			continue
		}
		if n < 0 {
			n = len(v)
		} else if len(v) != n {
			return 0, fmt.Errorf("shape mismatch: vectors of length %d and %d", n, len(v))
		}
	}
	return n, nil
}

func kindList(args []Value) string {
	kinds := make([]string, len(args))
	for i, a := range args {
		if a == nil {
			kinds[i] = "nil"
			continue
		}
		kinds[i] = a.Kind().String()
	}
	return "(" + strings.Join(kinds, ", ") + ")"
}
