// Package num implements a numeric tower of natural, integer, rational, real,
// and complex numbers.
//
// Arithmetic on two Numbers of different kinds promotes the narrower operand
// to the wider kind and then applies the wider kind's operator, so the
// result's kind is the wider of the operands' kinds. Subtracting naturals
// produces an integer when the result is negative, and exact arithmetic whose
// result does not fit in the exact kinds' int64 range produces a real.
package num

import (
	"errors"
)

// Number is one of Natural, Integer, Rational, Real, or Complex.
type Number interface {
	// Kind returns the kind of the number.
	Kind() Kind
	// String formats the number the way it is printed as a result.
	String() string
	// IsZero reports whether the number is exactly zero.
	IsZero() bool

	number()
}

var (
	_ Number = Natural{}
	_ Number = Integer{}
	_ Number = Rational{}
	_ Number = Real{}
	_ Number = Complex{}
)

// arith holds a kind's operators. Operands always have the kind the table
// entry belongs to. Nil entries are operators the kind does not define.
type arith struct {
	add, sub, mul, quo, rem func(a, b Number) Number
	neg, abs                func(a Number) Number
}

var ops = [nkinds]arith{
	KindNatural: {
		add: func(a, b Number) Number { return a.(Natural).Add(b.(Natural)) },
		sub: func(a, b Number) Number { return a.(Natural).Sub(b.(Natural)) },
		mul: func(a, b Number) Number { return a.(Natural).Mul(b.(Natural)) },
		quo: func(a, b Number) Number { return a.(Natural).Quo(b.(Natural)) },
		rem: func(a, b Number) Number { return a.(Natural).Rem(b.(Natural)) },
		neg: func(a Number) Number { return a.(Natural).Neg() },
		abs: func(a Number) Number { return a },
	},
	KindInteger: {
		add: func(a, b Number) Number { return a.(Integer).Add(b.(Integer)) },
		sub: func(a, b Number) Number { return a.(Integer).Sub(b.(Integer)) },
		mul: func(a, b Number) Number { return a.(Integer).Mul(b.(Integer)) },
		quo: func(a, b Number) Number { return a.(Integer).Quo(b.(Integer)) },
		rem: func(a, b Number) Number { return a.(Integer).Rem(b.(Integer)) },
		neg: func(a Number) Number { return a.(Integer).Neg() },
		abs: func(a Number) Number { return a.(Integer).Abs() },
	},
	KindRational: {
		add: func(a, b Number) Number { return a.(Rational).Add(b.(Rational)) },
		sub: func(a, b Number) Number { return a.(Rational).Sub(b.(Rational)) },
		mul: func(a, b Number) Number { return a.(Rational).Mul(b.(Rational)) },
		quo: func(a, b Number) Number { return a.(Rational).Quo(b.(Rational)) },
		neg: func(a Number) Number { return a.(Rational).Neg() },
		abs: func(a Number) Number { return a.(Rational).Abs() },
	},
	KindReal: {
		add: func(a, b Number) Number { return a.(Real).Add(b.(Real)) },
		sub: func(a, b Number) Number { return a.(Real).Sub(b.(Real)) },
		mul: func(a, b Number) Number { return a.(Real).Mul(b.(Real)) },
		quo: func(a, b Number) Number { return a.(Real).Quo(b.(Real)) },
		neg: func(a Number) Number { return a.(Real).Neg() },
		abs: func(a Number) Number { return a.(Real).Abs() },
	},
	KindComplex: {
		add: func(a, b Number) Number { return a.(Complex).Add(b.(Complex)) },
		sub: func(a, b Number) Number { return a.(Complex).Sub(b.(Complex)) },
		mul: func(a, b Number) Number { return a.(Complex).Mul(b.(Complex)) },
		quo: func(a, b Number) Number { return a.(Complex).Quo(b.(Complex)) },
		neg: func(a Number) Number { return a.(Complex).Neg() },
		abs: func(a Number) Number { return a.(Complex).Abs() },
	},
}

// binary promotes a and b and applies the operator op selects.
func binary(name string, a, b Number, op func(*arith) func(a, b Number) Number) (r Number, err error) {
	a, b, k := promote(a, b)
	f := op(&ops[k])
	if f == nil {
		return nil, &KindError{Op: name, Kind: k}
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, _ := p.(error)
		var de *DivisionError
		if !errors.As(e, &de) {
			panic(p)
		}
		r, err = nil, de
	}()
	return f(a, b), nil
}

// Add returns a + b.
func Add(a, b Number) Number {
	r, _ := binary("+", a, b, func(o *arith) func(a, b Number) Number { return o.add })
	return r
}

// Sub returns a - b.
func Sub(a, b Number) Number {
	r, _ := binary("-", a, b, func(o *arith) func(a, b Number) Number { return o.sub })
	return r
}

// Mul returns a * b.
func Mul(a, b Number) Number {
	r, _ := binary("*", a, b, func(o *arith) func(a, b Number) Number { return o.mul })
	return r
}

// Quo returns a / b. Naturals and integers divide with truncation. The error
// is a *DivisionError if b is zero.
func Quo(a, b Number) (Number, error) {
	return binary("/", a, b, func(o *arith) func(a, b Number) Number { return o.quo })
}

// Rem returns a % b. Only naturals and integers have remainders; other kinds
// give a *KindError. The error is a *DivisionError if b is zero.
func Rem(a, b Number) (Number, error) {
	return binary("%", a, b, func(o *arith) func(a, b Number) Number { return o.rem })
}

// Neg returns -a. The negation of a natural is an integer.
func Neg(a Number) Number {
	return ops[a.Kind()].neg(a)
}

// Abs returns the magnitude of a. The magnitude of an integer is a natural,
// and the magnitude of a complex number is a real.
func Abs(a Number) Number {
	return ops[a.Kind()].abs(a)
}

// Cmp compares a and b after promotion, returning -1, 0, or 1. The second
// result is false when the numbers are complex and unordered.
func Cmp(a, b Number) (int, bool) {
	a, b, _ = promote(a, b)
	switch a := a.(type) {
	case Natural:
		return a.Cmp(b.(Natural)), true
	case Integer:
		return a.Cmp(b.(Integer)), true
	case Rational:
		return a.Cmp(b.(Rational)), true
	case Real:
		return a.Cmp(b.(Real)), true
	case Complex:
		return a.Cmp(b.(Complex))
	}
	panic("num: unknown number type")
}

// Equal reports whether a and b are equal after promotion. Reals and complex
// numbers are compared with tolerance Epsilon.
func Equal(a, b Number) bool {
	a, b, _ = promote(a, b)
	switch a := a.(type) {
	case Real:
		return a.Equal(b.(Real))
	case Complex:
		return a.Equal(b.(Complex))
	}
	// The exact kinds are comparable structs in canonical form.
	return a == b
}
