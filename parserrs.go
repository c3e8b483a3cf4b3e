package calc

import (
	"errors"
	"strconv"
)

// Error categories. Every error from lexing, parsing, or evaluating input
// matches exactly one of these with errors.Is.
var (
	ErrLexical = errors.New("lexical error")
	ErrSyntax  = errors.New("syntax error")
	ErrEval    = errors.New("evaluation error")
)

// TokenError is an error indicating a token that the grammar does not allow
// where it appears. It implements InputError.
type TokenError struct {
	Ln, Col int
	// Got describes the token that was found.
	Got string
	// Want describes what the parser expected instead.
	Want string
}

func (err *TokenError) Error() string {
	return errpos(err.Ln, err.Col, "expected "+err.Want+", found "+err.Got)
}

func (err *TokenError) Pos() int  { return err.Col }
func (err *TokenError) Line() int { return err.Ln }

func (err *TokenError) Is(target error) bool { return target == ErrSyntax }

// MissingElseError is an error indicating an if statement with no else
// branch. It implements InputError.
type MissingElseError struct {
	Ln, Col int
	// Got describes the token that was found instead of else.
	Got string
}

func (err *MissingElseError) Error() string {
	return errpos(err.Ln, err.Col, "expected else, found "+err.Got)
}

func (err *MissingElseError) Pos() int  { return err.Col }
func (err *MissingElseError) Line() int { return err.Ln }

func (err *MissingElseError) Is(target error) bool { return target == ErrSyntax }

// UndefinedFunctionError is an error indicating a call to a function that has
// not been defined. It implements InputError.
type UndefinedFunctionError struct {
	Ln, Col int
	// Func is the name that was called.
	Func string
}

func (err *UndefinedFunctionError) Error() string {
	return errpos(err.Ln, err.Col, "function "+strconv.Quote(err.Func)+" does not exist")
}

func (err *UndefinedFunctionError) Pos() int  { return err.Col }
func (err *UndefinedFunctionError) Line() int { return err.Ln }

func (err *UndefinedFunctionError) Is(target error) bool { return target == ErrSyntax }

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	Ln, Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Ln, err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int  { return err.Col }
func (err *CallError) Line() int { return err.Ln }

func (err *CallError) Is(target error) bool { return target == ErrSyntax }

// EmptyExpressionError is an error indicating a line with nothing to parse.
type EmptyExpressionError struct {
	Ln, Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Ln, err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int  { return err.Col }
func (err *EmptyExpressionError) Line() int { return err.Ln }

func (err *EmptyExpressionError) Is(target error) bool { return target == ErrSyntax }

// IncompleteError is an error indicating that the input ended inside a
// function definition or if statement that needs more lines. A driver with no
// line source can use it to prompt for more input and parse again.
type IncompleteError struct {
	Ln, Col int
	// Construct is "fn" or "if".
	Construct string
}

func (err *IncompleteError) Error() string {
	return errpos(err.Ln, err.Col, "unfinished "+err.Construct+" needs more input")
}

func (err *IncompleteError) Pos() int  { return err.Col }
func (err *IncompleteError) Line() int { return err.Ln }

func (err *IncompleteError) Is(target error) bool { return target == ErrSyntax }

// IsIncomplete reports whether err indicates input that ended in the middle of
// a statement.
func IsIncomplete(err error) bool {
	var ie *IncompleteError
	return errors.As(err, &ie)
}

// errpos is a shortcut to create an error message with a position.
func errpos(line, col int, msg string) string {
	return strconv.Itoa(line) + ":" + strconv.Itoa(col) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
	// Line returns the 1-based number of the line containing the error.
	Line() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*MissingElseError)(nil)
	_ InputError = (*UndefinedFunctionError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*IncompleteError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*TypeError)(nil)
)
