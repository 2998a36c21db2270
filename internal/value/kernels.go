package value

import (
	"math"
	"sort"
)

// kernel is one named numeric operation. Scalars and Vectors share this one
// table, so the operation sets of the two shapes cannot drift apart: an
// operation either exists at every shape or at none.
type kernel struct {
	arity int
	fn    func(args []float64) float64
}

func unary(f func(float64) float64) kernel {
	return kernel{arity: 1, fn: func(a []float64) float64 { return f(a[0]) }}
}

func binary(f func(float64, float64) float64) kernel {
	return kernel{arity: 2, fn: func(a []float64) float64 { return f(a[0], a[1]) }}
}

var kernels = map[string]kernel{
	// arithmetic
	"add": binary(func(a, b float64) float64 { return a + b }),
	"sub": binary(func(a, b float64) float64 { return a - b }),
	"mul": binary(func(a, b float64) float64 { return a * b }),
	"div": binary(func(a, b float64) float64 { return a / b }),
	"mod": binary(math.Mod),
	"pow": binary(math.Pow),
	"neg": unary(func(a float64) float64 { return -a }),

	// rounding and magnitude
	"abs":   unary(math.Abs),
	"sign":  unary(sign),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"trunc": unary(math.Trunc),
	"round": unary(math.Round),
	"min":   binary(math.Min),
	"max":   binary(math.Max),

	// trigonometry
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"atan2": binary(math.Atan2),
	"hypot": binary(math.Hypot),

	// hyperbolic
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"asinh": unary(math.Asinh),
	"acosh": unary(math.Acosh),
	"atanh": unary(math.Atanh),

	// exponential and logarithmic
	"exp":   unary(math.Exp),
	"exp2":  unary(math.Exp2),
	"expm1": unary(math.Expm1),
	"log":   unary(math.Log),
	"log2":  unary(math.Log2),
	"log10": unary(math.Log10),
	"log1p": unary(math.Log1p),
	"sqrt":  unary(math.Sqrt),
	"cbrt":  unary(math.Cbrt),

	// angle conversion
	"degrees": unary(func(a float64) float64 { return a * 180 / math.Pi }),
	"radians": unary(func(a float64) float64 { return a * math.Pi / 180 }),

	// integer operations; arguments are coerced by IntegerPrimitive
	"gcd": binary(gcd),
	"lcm": binary(lcm),
}

// Ops returns the names of every operation in the shared table, sorted.
func Ops() []string {
	out := make([]string, 0, len(kernels))
	for name := range kernels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Supports reports whether the named operation exists in the shared table.
func Supports(op string) bool {
	_, ok := kernels[op]
	return ok
}

// Arity returns the operand count of the named operation.
func Arity(op string) (int, bool) {
	k, ok := kernels[op]
	if !ok {
		return 0, false
	}
	return k.arity, true
}

func sign(a float64) float64 {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return a // keeps ±0 and NaN
	}
}

func gcd(a, b float64) float64 {
	x, y := int64(a), int64(b)
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}
	return float64(x)
}

func lcm(a, b float64) float64 {
	x, y := int64(a), int64(b)
	if x == 0 || y == 0 {
		return 0
	}
	g := int64(gcd(a, b))
	q := x / g * y
	if q < 0 {
		q = -q
	}
	return float64(q)
}
