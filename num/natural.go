package num

import "strconv"

// Natural is a non-negative integer.
//
// Naturals and integers are backed by int64. Arithmetic whose exact result
// does not fit gives the nearest Real.
type Natural struct {
	v int64
}

// NewNatural creates a natural number. The result is a *RangeError if v is
// negative.
func NewNatural(v int64) (Natural, error) {
	if v < 0 {
		return Natural{}, &RangeError{Kind: KindNatural, Value: strconv.FormatInt(v, 10)}
	}
	return Natural{v}, nil
}

// ParseNatural converts a run of decimal digits to a natural.
func ParseNatural(s string) (Natural, error) {
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return Natural{}, &LiteralError{Text: s, Kind: KindNatural, Err: err}
	}
	return Natural{int64(v)}, nil
}

func (Natural) number() {}

func (Natural) Kind() Kind { return KindNatural }

func (n Natural) String() string { return strconv.FormatInt(n.v, 10) }

func (n Natural) IsZero() bool { return n.v == 0 }

// Int64 returns the value of n.
func (n Natural) Int64() int64 { return n.v }

// Add returns n + m. The result is a Real if the sum overflows.
func (n Natural) Add(m Natural) Number {
	if v, ok := add64(n.v, m.v); ok {
		return Natural{v}
	}
	return Real{float64(n.v) + float64(m.v)}
}

// Sub returns n - m. The result is an Integer when m > n.
func (n Natural) Sub(m Natural) Number {
	if m.v > n.v {
		return Integer{n.v - m.v}
	}
	return Natural{n.v - m.v}
}

// Mul returns n * m. The result is a Real if the product overflows.
func (n Natural) Mul(m Natural) Number {
	if v, ok := mul64(n.v, m.v); ok {
		return Natural{v}
	}
	return Real{float64(n.v) * float64(m.v)}
}

// Quo returns the truncated quotient n / m. Panics with a *DivisionError if m
// is zero.
func (n Natural) Quo(m Natural) Natural {
	if m.v == 0 {
		panic(&DivisionError{Op: "/", X: n})
	}
	return Natural{n.v / m.v}
}

// Rem returns n % m. Panics with a *DivisionError if m is zero.
func (n Natural) Rem(m Natural) Natural {
	if m.v == 0 {
		panic(&DivisionError{Op: "%", X: n})
	}
	return Natural{n.v % m.v}
}

// Neg returns -n, which is an Integer.
func (n Natural) Neg() Integer { return Integer{-n.v} }

// Cmp compares n and m, returning -1, 0, or 1.
func (n Natural) Cmp(m Natural) int {
	switch {
	case n.v < m.v:
		return -1
	case n.v > m.v:
		return 1
	}
	return 0
}
