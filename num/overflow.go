package num

import (
	"math"
	"math/big"
	"math/bits"
)

// The exact kinds hold values in [-math.MaxInt64, math.MaxInt64]. Excluding
// math.MinInt64 keeps negation and magnitude closed. Operations whose exact
// result leaves that range give the nearest Real instead.

// add64 returns a + b and whether the sum is in range.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (a^s)&(b^s) < 0 || s == math.MinInt64 {
		return 0, false
	}
	return s, true
}

// sub64 returns a - b and whether the difference is in range.
func sub64(a, b int64) (int64, bool) {
	d := a - b
	if (a^b)&(a^d) < 0 || d == math.MinInt64 {
		return 0, false
	}
	return d, true
}

// mul64 returns a * b and whether the product is in range.
func mul64(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(mag(a), mag(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		return -int64(lo), true
	}
	return int64(lo), true
}

func mag(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}

// bigRat converts r to a big.Rat.
func (r Rational) bigRat() *big.Rat {
	return big.NewRat(r.num.v, r.den.v)
}

// fromBig converts x to a Rational when its reduced terms are in range and to
// the nearest Real otherwise.
func fromBig(x *big.Rat) Number {
	n, d := x.Num(), x.Denom()
	if n.IsInt64() && d.IsInt64() && n.Int64() != math.MinInt64 {
		return Rational{Integer{n.Int64()}, Integer{d.Int64()}}
	}
	f, _ := x.Float64()
	return Real{f}
}
