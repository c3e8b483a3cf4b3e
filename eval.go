package calc

import (
	"errors"
	"strconv"

	"github.com/zephyrtronium/calc/num"
)

// Scope maps the parameter names of a function call to their argument
// values. The top level of a line evaluates in an empty scope.
type Scope map[string]num.Number

// Value evaluates a numeric statement. The error is a *TypeError if the
// statement is a condition.
func Value(s *Stmt, scope Scope) (num.Number, error) {
	return value(s.n, scope)
}

// Truth evaluates a condition statement. The error is a *TypeError if the
// statement is numeric.
func Truth(s *Stmt, scope Scope) (bool, error) {
	return truth(s.n, scope)
}

func value(n *node, scope Scope) (num.Number, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeName:
		v, ok := scope[n.name]
		if !ok {
			return nil, &NameError{Ln: n.line, Col: n.col, Name: n.name}
		}
		return v, nil
	case nodeCall:
		inner, err := bind(n, scope)
		if err != nil {
			return nil, err
		}
		return value(n.fn.body, inner)
	case nodeBuiltin:
		args, err := values(n.args, scope)
		if err != nil {
			return nil, err
		}
		return n.builtin.Call(args)
	case nodeNeg:
		x, err := value(n.left, scope)
		if err != nil {
			return nil, err
		}
		return num.Neg(x), nil
	case nodeNop, nodeExpr:
		return value(n.left, scope)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeRem:
		l, err := value(n.left, scope)
		if err != nil {
			return nil, err
		}
		r, err := value(n.right, scope)
		if err != nil {
			return nil, err
		}
		return arith(n.kind, l, r)
	case nodeIf:
		c, err := truth(n.cond, scope)
		if err != nil {
			return nil, err
		}
		if c {
			return value(n.left, scope)
		}
		return value(n.right, scope)
	case nodeFunc:
		return nil, &TypeError{Ln: n.line, Col: n.col, Want: "number", Got: "function definition"}
	}
	return nil, &TypeError{Ln: n.line, Col: n.col, Want: "number", Got: "condition"}
}

func arith(k nodeKind, l, r num.Number) (num.Number, error) {
	var x num.Number
	var err error
	switch k {
	case nodeAdd:
		return num.Add(l, r), nil
	case nodeSub:
		return num.Sub(l, r), nil
	case nodeMul:
		return num.Mul(l, r), nil
	case nodeDiv:
		x, err = num.Quo(l, r)
	case nodeRem:
		x, err = num.Rem(l, r)
	}
	if err != nil {
		return nil, &ArithError{Op: binops[k], Err: err}
	}
	return x, nil
}

func truth(n *node, scope Scope) (bool, error) {
	switch n.kind {
	case nodeBool:
		return n.truth, nil
	case nodeNot:
		x, err := truth(n.left, scope)
		return !x, err
	case nodeAnd, nodeOr, nodeXor:
		// Both sides always evaluate.
		l, err := truth(n.left, scope)
		if err != nil {
			return false, err
		}
		r, err := truth(n.right, scope)
		if err != nil {
			return false, err
		}
		switch n.kind {
		case nodeAnd:
			return l && r, nil
		case nodeOr:
			return l || r, nil
		}
		return l != r, nil
	case nodeLess, nodeGreater, nodeEqual, nodeNotEqual, nodeLessEq, nodeGreaterEq:
		l, err := value(n.left, scope)
		if err != nil {
			return false, err
		}
		r, err := value(n.right, scope)
		if err != nil {
			return false, err
		}
		return compare(n, l, r)
	case nodeCall:
		inner, err := bind(n, scope)
		if err != nil {
			return false, err
		}
		return truth(n.fn.body, inner)
	case nodeExpr:
		return truth(n.left, scope)
	case nodeIf:
		c, err := truth(n.cond, scope)
		if err != nil {
			return false, err
		}
		if c {
			return truth(n.left, scope)
		}
		return truth(n.right, scope)
	case nodeFunc:
		return false, &TypeError{Ln: n.line, Col: n.col, Want: "condition", Got: "function definition"}
	}
	return false, &TypeError{Ln: n.line, Col: n.col, Want: "condition", Got: "number"}
}

func compare(n *node, l, r num.Number) (bool, error) {
	switch n.kind {
	case nodeEqual:
		return num.Equal(l, r), nil
	case nodeNotEqual:
		return !num.Equal(l, r), nil
	}
	// Equal operands compare as equal even when unordered.
	c, ok := 0, true
	if !num.Equal(l, r) {
		c, ok = num.Cmp(l, r)
	}
	if !ok {
		return false, &OrderError{Ln: n.line, Col: n.col, X: l, Y: r}
	}
	switch n.kind {
	case nodeLess:
		return c < 0, nil
	case nodeGreater:
		return c > 0, nil
	case nodeLessEq:
		return c <= 0, nil
	}
	return c >= 0, nil
}

func values(args []*node, scope Scope) ([]num.Number, error) {
	r := make([]num.Number, len(args))
	for i, a := range args {
		v, err := value(a, scope)
		if err != nil {
			return nil, err
		}
		r[i] = v
	}
	return r, nil
}

// bind evaluates a call's arguments in the caller's scope and binds them to
// the callee's parameters. The callee sees only its own parameters.
func bind(n *node, scope Scope) (Scope, error) {
	args, err := values(n.args, scope)
	if err != nil {
		return nil, err
	}
	inner := make(Scope, len(args))
	for i, a := range args {
		inner[n.fn.Params[i].Name] = a
	}
	return inner, nil
}

// NameError is an error indicating a reference to a variable that is not in
// scope. It implements InputError.
type NameError struct {
	Ln, Col int
	// Name is the variable name.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Ln, err.Col, "unknown variable "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int  { return err.Col }
func (err *NameError) Line() int { return err.Ln }

func (err *NameError) Is(target error) bool { return target == ErrEval }

// TypeError is an error indicating a number used where a condition is needed
// or vice versa. It implements InputError.
type TypeError struct {
	Ln, Col int
	// Want is "number" or "condition".
	Want string
	// Got describes what was found.
	Got string
}

func (err *TypeError) Error() string {
	return errpos(err.Ln, err.Col, "expected "+err.Want+", found "+err.Got)
}

func (err *TypeError) Pos() int  { return err.Col }
func (err *TypeError) Line() int { return err.Ln }

func (err *TypeError) Is(target error) bool { return target == ErrEval }

// OrderError is an error indicating an ordered comparison of complex numbers
// that have no order.
type OrderError struct {
	Ln, Col int
	X, Y    num.Number
}

func (err *OrderError) Error() string {
	return errpos(err.Ln, err.Col, "cannot order "+err.X.String()+" and "+err.Y.String())
}

func (err *OrderError) Pos() int  { return err.Col }
func (err *OrderError) Line() int { return err.Ln }

func (err *OrderError) Is(target error) bool { return target == ErrEval }

// ArithError is an error from an arithmetic operator or builtin. It unwraps
// to a *num.DivisionError or *num.KindError.
type ArithError struct {
	// Op is the operator or function that failed.
	Op  string
	Err error
}

func (err *ArithError) Error() string {
	return err.Op + ": " + err.Err.Error()
}

func (err *ArithError) Unwrap() error { return err.Err }

func (err *ArithError) Is(target error) bool { return target == ErrEval }

// IsDivisionByZero reports whether err was caused by division by zero.
func IsDivisionByZero(err error) bool {
	var de *num.DivisionError
	return errors.As(err, &de)
}
