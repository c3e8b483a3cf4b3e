package calc

import (
	"errors"
	"math"
	"math/big"
	"math/cmplx"
	"strconv"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/calc/num"
)

// Func is a builtin function from numbers to a number.
type Func interface {
	// Call evaluates the function. args has a length for which CanCall
	// returned true.
	Call(args []num.Number) (num.Number, error)

	// CanCall returns whether the function can be called with n arguments.
	// The parser rejects calls for which CanCall is false. A function for
	// which CanCall(0) is true may be named without parentheses.
	CanCall(n int) bool
}

// bigprec is the precision of the transcendental builtins' intermediate
// results.
const bigprec = 64

var globalfuncs = map[string]Func{
	"sqrt": Monadic(sqrt),
	"abs":  Monadic(func(x num.Number) (num.Number, error) { return num.Abs(x), nil }),
	"conj": Monadic(func(x num.Number) (num.Number, error) { return complexOf(x).Conj(), nil }),
	"norm": Monadic(func(x num.Number) (num.Number, error) { return complexOf(x).Norm(), nil }),
	"re":   Monadic(func(x num.Number) (num.Number, error) { return complexOf(x).Re(), nil }),
	"im":   Monadic(func(x num.Number) (num.Number, error) { return complexOf(x).Im(), nil }),
	"inv":  Monadic(inv),

	// Past the range of float64, exp is computed directly.
	"exp": bigmonadic{name: "exp", f: bigfloat.Exp, max: 1000, fallback: math.Exp},
	"ln":  bigmonadic{name: "ln", f: bigfloat.Log, positive: true},
	"log": bigmonadic{name: "log", f: func(out, in *big.Float) *big.Float {
		bigfloat.Log(out, in)
		in.SetFloat64(10).SetPrec(out.Prec())
		bigfloat.Log(in, in)
		return out.Quo(out, in)
	}, positive: true},
	"pow": Dyadic(pow),

	// constants
	"pi": Niladic(func() num.Number {
		var out big.Float
		out.SetPrec(bigprec)
		return realOf(bigfloat.Pi(&out))
	}),
	"e": Niladic(func() num.Number {
		var out, one big.Float
		out.SetPrec(bigprec)
		one.SetPrec(bigprec).SetFloat64(1)
		return realOf(bigfloat.Exp(&out, &one))
	}),
}

// DisableDefaultFuncs returns a functions map suitable for disabling all
// default functions when passed to ParseFuncs.
func DisableDefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}

type monadic struct {
	f func(x num.Number) (num.Number, error)
}

func (m monadic) Call(args []num.Number) (num.Number, error) {
	return m.f(args[0])
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one number into a Func.
func Monadic(f func(x num.Number) (num.Number, error)) Func {
	return monadic{f}
}

type dyadic struct {
	f func(x, y num.Number) (num.Number, error)
}

func (d dyadic) Call(args []num.Number) (num.Number, error) {
	return d.f(args[0], args[1])
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two numbers into a Func.
func Dyadic(f func(x, y num.Number) (num.Number, error)) Func {
	return dyadic{f}
}

type niladic struct {
	f func() num.Number
}

func (n niladic) Call(args []num.Number) (num.Number, error) {
	return n.f(), nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func.
func Niladic(f func() num.Number) Func {
	return niladic{f}
}

type bigmonadic struct {
	name string
	f    func(out, in *big.Float) *big.Float
	// positive restricts the domain to x > 0.
	positive bool
	// fallback computes f for arguments with magnitude past max, if max is
	// nonzero.
	max      float64
	fallback func(float64) float64
}

func (m bigmonadic) Call(args []num.Number) (r num.Number, err error) {
	x, ok := floatOf(args[0])
	if !ok || math.IsInf(x, 0) || math.IsNaN(x) || m.positive && x <= 0 {
		return nil, &DomainError{X: args[0], Arg: 1, Func: m.name}
	}
	if m.max != 0 && math.Abs(x) > m.max {
		return num.NewReal(m.fallback(x)), nil
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, _ := p.(error) // panic if not error
		if !errors.As(e, new(big.ErrNaN)) {
			panic(p)
		}
		r, err = nil, &DomainError{X: args[0], Arg: 1, Func: m.name}
	}()
	var in, out big.Float
	in.SetPrec(bigprec).SetFloat64(x)
	out.SetPrec(bigprec)
	return realOf(m.f(&out, &in)), nil
}

func (m bigmonadic) CanCall(n int) bool {
	return n == 1
}

// Big wraps an arbitrary-precision function of one real variable into a Func.
// f must set out to its result, to the precision of in. If f is called on an
// argument outside its domain, it should panic with an error of type
// big.ErrNaN. Complex arguments and arguments that panic become
// *DomainError.
func Big(name string, f func(out, in *big.Float) *big.Float) Func {
	return bigmonadic{name: name, f: f}
}

// floatOf converts a number to float64. It reports false for complex numbers
// with nonzero imaginary parts.
func floatOf(x num.Number) (float64, bool) {
	switch x := x.(type) {
	case num.Natural:
		return float64(x.Int64()), true
	case num.Integer:
		return float64(x.Int64()), true
	case num.Rational:
		return x.Real().Float64(), true
	case num.Real:
		return x.Float64(), true
	case num.Complex:
		return x.Re().Float64(), x.IsReal()
	}
	return 0, false
}

func complexOf(x num.Number) num.Complex {
	z, err := num.Convert(x, num.KindComplex)
	if err != nil {
		panic(err)
	}
	return z.(num.Complex)
}

func realOf(x *big.Float) num.Real {
	f, _ := x.Float64()
	return num.NewReal(f)
}

func sqrt(x num.Number) (num.Number, error) {
	if z, ok := x.(num.Complex); ok && !z.IsReal() {
		w := cmplx.Sqrt(complex(z.Re().Float64(), z.Im().Float64()))
		return num.NewComplex(real(w), imag(w)), nil
	}
	f, _ := floatOf(x)
	r := num.NewReal(f)
	if s, ok := r.Sqrt(); ok {
		return s, nil
	}
	return r.SqrtComplex(), nil
}

func inv(x num.Number) (num.Number, error) {
	var r num.Number
	var err error
	switch x := x.(type) {
	case num.Natural, num.Integer:
		q, _ := num.Convert(x, num.KindRational)
		r, err = q.(num.Rational).Inv()
	case num.Rational:
		r, err = x.Inv()
	case num.Real:
		one, _ := num.NewNatural(1)
		r, err = num.Quo(one, x)
	case num.Complex:
		r, err = x.Inv()
	}
	if err != nil {
		return nil, &ArithError{Op: "inv", Err: err}
	}
	return r, nil
}

// pow computes x^y. Exact bases keep their kind when y is a natural. Other
// combinations use real arithmetic.
func pow(x, y num.Number) (num.Number, error) {
	if n, ok := y.(num.Natural); ok {
		switch x := x.(type) {
		case num.Natural, num.Integer, num.Rational:
			return expexact(x, n.Int64()), nil
		}
	}
	xf, xok := floatOf(x)
	yf, yok := floatOf(y)
	if !xok {
		return nil, &DomainError{X: x, Arg: 1, Func: "pow"}
	}
	if !yok {
		return nil, &DomainError{X: y, Arg: 2, Func: "pow"}
	}
	if xf < 0 {
		// Negative bases are only defined here for natural exponents.
		return nil, &DomainError{X: x, Arg: 1, Func: "pow"}
	}
	if xf == 0 {
		if yf < 0 {
			return nil, &ArithError{Op: "pow", Err: &num.DivisionError{Op: "pow", X: x}}
		}
		return num.NewReal(math.Pow(0, yf)), nil
	}
	if math.Abs(yf*math.Log(xf)) > 1000 {
		return num.NewReal(math.Pow(xf, yf)), nil
	}
	var z, b, e big.Float
	b.SetPrec(bigprec).SetFloat64(xf)
	e.SetPrec(bigprec).SetFloat64(yf)
	z.SetPrec(bigprec)
	return realOf(bigfloat.Pow(&z, &b, &e)), nil
}

// expexact computes x^n by squaring. The result has the kind of x.
func expexact(x num.Number, n int64) num.Number {
	one, _ := num.NewNatural(1)
	r, _ := num.Convert(one, x.Kind())
	for n > 0 {
		if n&1 != 0 {
			r = num.Mul(r, x)
		}
		x = num.Mul(x, x)
		n >>= 1
	}
	return r
}

// DomainError is an error returned when a function is called on arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X num.Number
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Is(target error) bool { return target == ErrEval }
