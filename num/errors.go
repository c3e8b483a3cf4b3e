package num

import "strconv"

// DivisionError is an error from dividing by zero or taking a remainder
// modulo zero.
type DivisionError struct {
	// Op is the operation that was attempted, e.g. "/" or "%".
	Op string
	// X is the dividend, if known.
	X Number
}

func (err *DivisionError) Error() string {
	if err.X == nil {
		return "division by zero in " + err.Op
	}
	return "division by zero in " + err.X.String() + " " + err.Op + " 0"
}

// RangeError is an error constructing a number from a value outside the
// range of its kind, e.g. a negative natural.
type RangeError struct {
	Kind  Kind
	Value string
}

func (err *RangeError) Error() string {
	return err.Value + " is out of range for " + err.Kind.String()
}

// KindError is an error applying an operation to a kind that does not define
// it, e.g. a remainder of reals.
type KindError struct {
	Op   string
	Kind Kind
}

func (err *KindError) Error() string {
	return strconv.Quote(err.Op) + " is not defined for " + err.Kind.String() + " numbers"
}

// LiteralError is an error converting text to a number.
type LiteralError struct {
	// Text is the literal text.
	Text string
	// Kind is the kind of number the text was meant to be.
	Kind Kind
	// Err is the underlying conversion error.
	Err error
}

func (err *LiteralError) Error() string {
	return "invalid " + err.Kind.String() + " literal " + strconv.Quote(err.Text) + ": " + err.Err.Error()
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}
