package num

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance for real equality. Two reals are equal when they
// differ by less than Epsilon. Tolerance equality is not transitive: a chain
// of values each within Epsilon of the next can drift arbitrarily far.
const Epsilon = 1e-14

// Real is a floating-point number.
type Real struct {
	v float64
}

// NewReal creates a real.
func NewReal(v float64) Real { return Real{v} }

// ParseReal converts a decimal literal like 1.5 to a real.
func ParseReal(s string) (Real, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Real{}, &LiteralError{Text: s, Kind: KindReal, Err: err}
	}
	return Real{v}, nil
}

func (Real) number() {}

func (Real) Kind() Kind { return KindReal }

// String formats r as the shortest decimal that parses back to r, without an
// exponent.
func (r Real) String() string {
	v := r.v
	if v == 0 {
		// No negative zero.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (r Real) IsZero() bool { return r.v == 0 }

// Float64 returns the value of r.
func (r Real) Float64() float64 { return r.v }

func (r Real) Add(s Real) Real { return Real{r.v + s.v} }

func (r Real) Sub(s Real) Real { return Real{r.v - s.v} }

func (r Real) Mul(s Real) Real { return Real{r.v * s.v} }

// Quo returns r / s. Panics with a *DivisionError if s is zero.
func (r Real) Quo(s Real) Real {
	if s.v == 0 {
		panic(&DivisionError{Op: "/", X: r})
	}
	return Real{r.v / s.v}
}

func (r Real) Neg() Real { return Real{-r.v} }

func (r Real) Abs() Real { return Real{math.Abs(r.v)} }

// Equal reports whether r and s are within Epsilon of each other.
func (r Real) Equal(s Real) bool { return math.Abs(r.v-s.v) < Epsilon }

// Cmp compares r and s, treating values within Epsilon as equal.
func (r Real) Cmp(s Real) int {
	switch {
	case r.Equal(s):
		return 0
	case r.v < s.v:
		return -1
	}
	return 1
}

// Sqrt returns the square root of r. The second result is false when r is
// negative.
func (r Real) Sqrt() (Real, bool) {
	if r.v < 0 {
		return Real{}, false
	}
	return Real{math.Sqrt(r.v)}, true
}

// SqrtComplex returns the principal square root of r as a complex number. It
// is defined for every real.
func (r Real) SqrtComplex() Complex {
	if r.v < 0 {
		return Complex{Real{}, Real{math.Sqrt(-r.v)}}
	}
	return Complex{Real{math.Sqrt(r.v)}, Real{}}
}
