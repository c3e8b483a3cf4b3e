package num

import (
	"math/big"
	"strconv"
)

// Rational is a fraction of integers. Rationals are always in lowest terms
// with a positive denominator. Arithmetic whose reduced result does not fit
// gives the nearest Real.
type Rational struct {
	num, den Integer
}

// NewRational creates the rational n/d, reduced to lowest terms. The result
// is a *DivisionError if d is zero.
func NewRational(n, d Integer) (Rational, error) {
	if d.v == 0 {
		return Rational{}, &DivisionError{Op: "//", X: n}
	}
	return reduce(n.v, d.v), nil
}

// ParseRational converts the numerator and denominator digit runs of a
// literal like 3//4 to a rational.
func ParseRational(n, d string) (Rational, error) {
	a, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return Rational{}, &LiteralError{Text: n + "//" + d, Kind: KindRational, Err: err}
	}
	b, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return Rational{}, &LiteralError{Text: n + "//" + d, Kind: KindRational, Err: err}
	}
	return NewRational(Integer{a}, Integer{b})
}

// reduce normalizes n/d. d must be nonzero.
func reduce(n, d int64) Rational {
	g := gcd(n, d)
	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}
	return Rational{Integer{n}, Integer{d}}
}

// GCD returns the greatest common divisor of the magnitudes of a and b.
// GCD(0, 0) is 0.
func GCD(a, b Integer) Natural {
	return Natural{gcd(a.v, b.v)}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for a > 0 && b > 0 {
		if a > b {
			a %= b
		} else {
			b %= a
		}
	}
	return a + b
}

func (Rational) number() {}

func (Rational) Kind() Kind { return KindRational }

func (r Rational) String() string { return r.num.String() + " / " + r.den.String() }

func (r Rational) IsZero() bool { return r.num.v == 0 }

// Num returns the numerator of r.
func (r Rational) Num() Integer { return r.num }

// Den returns the denominator of r, which is always positive.
func (r Rational) Den() Integer { return r.den }

// Real returns the nearest real to r.
func (r Rational) Real() Real { return Real{float64(r.num.v) / float64(r.den.v)} }

// Add returns r + s. The result is a Real if the reduced sum does not fit.
func (r Rational) Add(s Rational) Number {
	a, ok1 := mul64(r.num.v, s.den.v)
	b, ok2 := mul64(r.den.v, s.num.v)
	d, ok3 := mul64(r.den.v, s.den.v)
	if n, ok := add64(a, b); ok && ok1 && ok2 && ok3 {
		return reduce(n, d)
	}
	return fromBig(new(big.Rat).Add(r.bigRat(), s.bigRat()))
}

// Sub returns r - s. The result is a Real if the reduced difference does not
// fit.
func (r Rational) Sub(s Rational) Number {
	a, ok1 := mul64(r.num.v, s.den.v)
	b, ok2 := mul64(r.den.v, s.num.v)
	d, ok3 := mul64(r.den.v, s.den.v)
	if n, ok := sub64(a, b); ok && ok1 && ok2 && ok3 {
		return reduce(n, d)
	}
	return fromBig(new(big.Rat).Sub(r.bigRat(), s.bigRat()))
}

// Mul returns r * s. The result is a Real if the reduced product does not
// fit.
func (r Rational) Mul(s Rational) Number {
	n, ok1 := mul64(r.num.v, s.num.v)
	d, ok2 := mul64(r.den.v, s.den.v)
	if ok1 && ok2 {
		return reduce(n, d)
	}
	return fromBig(new(big.Rat).Mul(r.bigRat(), s.bigRat()))
}

// Quo returns r / s. Panics with a *DivisionError if s is zero.
func (r Rational) Quo(s Rational) Number {
	if s.num.v == 0 {
		panic(&DivisionError{Op: "/", X: r})
	}
	n, ok1 := mul64(r.num.v, s.den.v)
	d, ok2 := mul64(r.den.v, s.num.v)
	if ok1 && ok2 {
		return reduce(n, d)
	}
	return fromBig(new(big.Rat).Quo(r.bigRat(), s.bigRat()))
}

// Inv returns 1/r. The result is a *DivisionError if r is zero.
func (r Rational) Inv() (Rational, error) {
	return NewRational(r.den, r.num)
}

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{Integer{-r.num.v}, r.den} }

func (r Rational) Abs() Rational { return Rational{Integer{r.num.Abs().v}, r.den} }

// Cmp compares r and s, returning -1, 0, or 1.
func (r Rational) Cmp(s Rational) int {
	// Denominators are positive, so cross-multiplying preserves order.
	a, ok1 := mul64(r.num.v, s.den.v)
	b, ok2 := mul64(s.num.v, r.den.v)
	if ok1 && ok2 {
		return Integer{a}.Cmp(Integer{b})
	}
	return r.bigRat().Cmp(s.bigRat())
}
