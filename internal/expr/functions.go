package expr

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Functions maps every callable name to its cty implementation. Rounding and
// min/max come from the cty standard library; the rest wrap package math and
// reject arguments whose result would be NaN.
var Functions = map[string]function.Function{
	"abs":   stdlib.AbsoluteFunc,
	"ceil":  stdlib.CeilFunc,
	"floor": stdlib.FloorFunc,
	"max":   stdlib.MaxFunc,
	"min":   stdlib.MinFunc,

	"signum": unary("Returns -1, 0 or 1 according to the sign of the given number.", signum),
	"round":  unary("Rounds half away from zero.", math.Round),
	"sqrt":   unary("Returns the square root of a non-negative number.", math.Sqrt),
	"exp":    unary("Returns e raised to the given power.", math.Exp),
	"ln":     unary("Returns the natural logarithm of a non-negative number.", math.Log),
	"log10":  unary("Returns the decimal logarithm of a non-negative number.", math.Log10),
	"sin":    unary("Returns the sine of an angle in radians.", math.Sin),
	"cos":    unary("Returns the cosine of an angle in radians.", math.Cos),
	"tan":    unary("Returns the tangent of an angle in radians.", math.Tan),
	"asin":   unary("Returns the arcsine, in radians, of a number in [-1, 1].", math.Asin),
	"acos":   unary("Returns the arccosine, in radians, of a number in [-1, 1].", math.Acos),
	"atan":   unary("Returns the arctangent, in radians.", math.Atan),
	"sinh":   unary("Returns the hyperbolic sine.", math.Sinh),
	"cosh":   unary("Returns the hyperbolic cosine.", math.Cosh),
	"tanh":   unary("Returns the hyperbolic tangent.", math.Tanh),
	"asinh":  unary("Returns the inverse hyperbolic sine.", math.Asinh),
	"acosh":  unary("Returns the inverse hyperbolic cosine of a number >= 1.", math.Acosh),
	"atanh":  unary("Returns the inverse hyperbolic tangent of a number in [-1, 1].", math.Atanh),

	"atan2": binary("Returns the angle, in radians, of the point (x, y) given as atan2(y, x).", math.Atan2),
	"pow":   binary("Returns the first number raised to the power of the second.", math.Pow),
}

// Names returns the callable function names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(Functions))
}

// call applies the named function to args.
func call(name string, args []float64) (float64, error) {
	fn, ok := Functions[name]
	if !ok {
		return 0, fmt.Errorf("%w: function %q", ErrUnknownName, name)
	}
	in := make([]cty.Value, len(args))
	for i, a := range args {
		if math.IsNaN(a) {
			return 0, fmt.Errorf("%w: %s: argument %d is NaN", ErrDomain, name, i+1)
		}
		in[i] = cty.NumberFloatVal(a)
	}
	out, err := fn.Call(in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	f, _ := out.AsBigFloat().Float64()
	return f, nil
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func unary(desc string, fn func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "x", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			x, _ := args[0].AsBigFloat().Float64()
			return numberVal(fn(x))
		},
	})
}

func binary(desc string, fn func(float64, float64) float64) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "a", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			a, _ := args[0].AsBigFloat().Float64()
			b, _ := args[1].AsBigFloat().Float64()
			return numberVal(fn(a, b))
		},
	})
}

// numberVal converts r to a cty number. cty cannot hold NaN.
func numberVal(r float64) (cty.Value, error) {
	if math.IsNaN(r) {
		return cty.NilVal, ErrDomain
	}
	return cty.NumberFloatVal(r), nil
}
