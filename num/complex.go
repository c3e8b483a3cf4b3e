package num

import "math"

// Complex is a complex number with real parts.
type Complex struct {
	re, im Real
}

// NewComplex creates the complex number re + im i.
func NewComplex(re, im float64) Complex { return Complex{Real{re}, Real{im}} }

// ParseImaginary converts the digits of a literal like 2.5i, without the i,
// to the purely imaginary number 0 + 2.5i.
func ParseImaginary(s string) (Complex, error) {
	im, err := ParseReal(s)
	if err != nil {
		err.(*LiteralError).Kind = KindComplex
		return Complex{}, err
	}
	return Complex{Real{}, im}, nil
}

func (Complex) number() {}

func (Complex) Kind() Kind { return KindComplex }

func (z Complex) String() string {
	if z.im.v < 0 {
		return z.re.String() + " - " + z.im.Neg().String() + "i"
	}
	return z.re.String() + " + " + z.im.String() + "i"
}

func (z Complex) IsZero() bool { return z.re.v == 0 && z.im.v == 0 }

// Re returns the real part of z.
func (z Complex) Re() Real { return z.re }

// Im returns the imaginary part of z.
func (z Complex) Im() Real { return z.im }

// IsReal reports whether the imaginary part of z is within Epsilon of zero.
func (z Complex) IsReal() bool { return z.im.Equal(Real{}) }

func (z Complex) Add(w Complex) Complex { return Complex{z.re.Add(w.re), z.im.Add(w.im)} }

func (z Complex) Sub(w Complex) Complex { return Complex{z.re.Sub(w.re), z.im.Sub(w.im)} }

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re.Mul(w.re).Sub(z.im.Mul(w.im)),
		im: z.im.Mul(w.re).Add(w.im.Mul(z.re)),
	}
}

// Quo returns z / w. Panics with a *DivisionError if w is zero.
func (z Complex) Quo(w Complex) Complex {
	n := w.Norm()
	if n.v == 0 {
		panic(&DivisionError{Op: "/", X: z})
	}
	p := z.Mul(w.Conj())
	return Complex{p.re.Quo(n), p.im.Quo(n)}
}

// Inv returns 1/z. The result is a *DivisionError if z is zero.
func (z Complex) Inv() (r Complex, err error) {
	if z.IsZero() {
		return Complex{}, &DivisionError{Op: "/", X: Natural{1}}
	}
	return Complex{re: Real{1}}.Quo(z), nil
}

func (z Complex) Neg() Complex { return Complex{z.re.Neg(), z.im.Neg()} }

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex { return Complex{z.re, z.im.Neg()} }

// Norm returns the squared magnitude of z.
func (z Complex) Norm() Real { return z.re.Mul(z.re).Add(z.im.Mul(z.im)) }

// Abs returns the magnitude of z.
func (z Complex) Abs() Real { return Real{math.Hypot(z.re.v, z.im.v)} }

// Equal reports whether both parts of z and w are equal within Epsilon.
func (z Complex) Equal(w Complex) bool { return z.re.Equal(w.re) && z.im.Equal(w.im) }

// Cmp compares z and w. Complex numbers are ordered only when their real parts
// or their imaginary parts are equal; otherwise the second result is false.
func (z Complex) Cmp(w Complex) (int, bool) {
	if z.re.Equal(w.re) {
		return z.im.Cmp(w.im), true
	}
	if z.im.Equal(w.im) {
		return z.re.Cmp(w.re), true
	}
	return 0, false
}
