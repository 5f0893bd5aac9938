package expr

import (
	"fmt"
	"math"
)

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Eval parses and evaluates src. Division by zero yields an infinity; any
// operation whose result is NaN fails with ErrDomain.
func Eval(src string) (float64, error) {
	ast, err := exprParser.ParseString("", src)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return ast.eval()
}

func (x *Expression) eval() (float64, error) {
	left, err := x.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, r := range x.Right {
		right, err := r.Term.eval()
		if err != nil {
			return 0, err
		}
		if left, err = apply(r.Op, left, right); err != nil {
			return 0, err
		}
	}
	return left, nil
}

func (t *Term) eval() (float64, error) {
	left, err := t.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, r := range t.Right {
		right, err := r.Unary.eval()
		if err != nil {
			return 0, err
		}
		if left, err = apply(r.Op, left, right); err != nil {
			return 0, err
		}
	}
	return left, nil
}

func (u *Unary) eval() (float64, error) {
	if u.Power != nil {
		return u.Power.eval()
	}
	v, err := u.Unary.eval()
	if err != nil {
		return 0, err
	}
	if u.Op == "-" {
		return -v, nil
	}
	return v, nil
}

func (p *Power) eval() (float64, error) {
	base, err := p.Base.eval()
	if err != nil || p.Exponent == nil {
		return base, err
	}
	exp, err := p.Exponent.eval()
	if err != nil {
		return 0, err
	}
	return apply("^", base, exp)
}

func (p *Primary) eval() (float64, error) {
	switch {
	case p.Number != nil:
		return *p.Number, nil
	case p.Call != nil:
		args := make([]float64, len(p.Call.Args))
		for i, a := range p.Call.Args {
			v, err := a.eval()
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return call(p.Call.Name, args)
	case p.Constant != nil:
		if c, ok := constants[*p.Constant]; ok {
			return c, nil
		}
		return 0, fmt.Errorf("%w: constant %q", ErrUnknownName, *p.Constant)
	default:
		return p.Sub.eval()
	}
}

func apply(op string, a, b float64) (float64, error) {
	var r float64
	switch op {
	case "+":
		r = a + b
	case "-":
		r = a - b
	case "*":
		r = a * b
	case "/":
		r = a / b
	case "%":
		r = math.Mod(a, b)
	case "^":
		r = math.Pow(a, b)
	}
	if math.IsNaN(r) {
		return 0, fmt.Errorf("%w: %g %s %g", ErrDomain, a, op, b)
	}
	return r, nil
}
