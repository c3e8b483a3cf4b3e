package num

import (
	"math"
	"strconv"
)

// Integer is a signed integer.
type Integer struct {
	v int64
}

// NewInteger creates an integer. Panics with a *RangeError if v is
// math.MinInt64, which has no representable negation.
func NewInteger(v int64) Integer {
	if v == math.MinInt64 {
		panic(&RangeError{Kind: KindInteger, Value: strconv.FormatInt(v, 10)})
	}
	return Integer{v}
}

func (Integer) number() {}

func (Integer) Kind() Kind { return KindInteger }

func (n Integer) String() string { return strconv.FormatInt(n.v, 10) }

func (n Integer) IsZero() bool { return n.v == 0 }

// Int64 returns the value of n.
func (n Integer) Int64() int64 { return n.v }

// Add returns n + m. The result is a Real if the sum overflows.
func (n Integer) Add(m Integer) Number {
	if v, ok := add64(n.v, m.v); ok {
		return Integer{v}
	}
	return Real{float64(n.v) + float64(m.v)}
}

// Sub returns n - m. The result is a Real if the difference overflows.
func (n Integer) Sub(m Integer) Number {
	if v, ok := sub64(n.v, m.v); ok {
		return Integer{v}
	}
	return Real{float64(n.v) - float64(m.v)}
}

// Mul returns n * m. The result is a Real if the product overflows.
func (n Integer) Mul(m Integer) Number {
	if v, ok := mul64(n.v, m.v); ok {
		return Integer{v}
	}
	return Real{float64(n.v) * float64(m.v)}
}

// Quo returns the quotient n / m truncated toward zero. Panics with a
// *DivisionError if m is zero.
func (n Integer) Quo(m Integer) Integer {
	if m.v == 0 {
		panic(&DivisionError{Op: "/", X: n})
	}
	return Integer{n.v / m.v}
}

// Rem returns n % m with the sign of n. Panics with a *DivisionError if m is
// zero.
func (n Integer) Rem(m Integer) Integer {
	if m.v == 0 {
		panic(&DivisionError{Op: "%", X: n})
	}
	return Integer{n.v % m.v}
}

// Neg returns -n.
func (n Integer) Neg() Integer { return Integer{-n.v} }

// Abs returns the magnitude of n.
func (n Integer) Abs() Natural {
	if n.v < 0 {
		return Natural{-n.v}
	}
	return Natural{n.v}
}

// Sign returns -1, 0, or 1 according to the sign of n.
func (n Integer) Sign() int {
	switch {
	case n.v < 0:
		return -1
	case n.v > 0:
		return 1
	}
	return 0
}

// Cmp compares n and m, returning -1, 0, or 1.
func (n Integer) Cmp(m Integer) int {
	switch {
	case n.v < m.v:
		return -1
	case n.v > m.v:
		return 1
	}
	return 0
}
