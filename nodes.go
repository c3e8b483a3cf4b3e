package calc

import (
	"strconv"
	"strings"

	"github.com/zephyrtronium/calc/num"
)

// node is a node in the abstract syntax tree of a statement.
type node struct {
	kind nodeKind

	name  string
	num   num.Number
	truth bool

	left  *node
	right *node
	// cond is the condition of an if statement. Its branches are left and
	// right.
	cond *node

	args []*node
	// fn is the definition a call resolved to when it was parsed, or the
	// definition a nodeFunc declares.
	fn      *Function
	builtin Func

	line, col int
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum     // num
	nodeBool    // truth
	nodeName    // lookup(name) in the call's scope
	nodeCall    // evaluate args, then fn's body in a scope of them
	nodeBuiltin // evaluate args, then call builtin

	nodeNeg // evaluate left, then negate
	nodeNop // evaluate left
	nodeNot // evaluate truth of left, then invert
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeRem // evaluate left, rem by right

	nodeLess      // left < right
	nodeGreater   // left > right
	nodeEqual     // left = right
	nodeNotEqual  // left != right
	nodeLessEq    // left <= right
	nodeGreaterEq // left >= right

	nodeAnd // truth of both left and right
	nodeOr  // truth of either left or right
	nodeXor // truth of exactly one of left and right

	nodeExpr // statement of left
	nodeIf   // if cond then left else right
	nodeFunc // definition of fn
)

var nodenames = [...]string{
	nodeNone:      "None",
	nodeNum:       "Num",
	nodeBool:      "Bool",
	nodeName:      "Name",
	nodeCall:      "Call",
	nodeBuiltin:   "Builtin",
	nodeNeg:       "Neg",
	nodeNop:       "Nop",
	nodeNot:       "Not",
	nodeAdd:       "Add",
	nodeSub:       "Sub",
	nodeMul:       "Mul",
	nodeDiv:       "Div",
	nodeRem:       "Rem",
	nodeLess:      "Less",
	nodeGreater:   "Greater",
	nodeEqual:     "Equal",
	nodeNotEqual:  "NotEqual",
	nodeLessEq:    "LessEq",
	nodeGreaterEq: "GreaterEq",
	nodeAnd:       "And",
	nodeOr:        "Or",
	nodeXor:       "Xor",
	nodeExpr:      "Expr",
	nodeIf:        "If",
	nodeFunc:      "Func",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodenames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodenames[k]
}

// binops is the operator spelling of each binary node kind.
var binops = map[nodeKind]string{
	nodeAdd:       "+",
	nodeSub:       "-",
	nodeMul:       "*",
	nodeDiv:       "/",
	nodeRem:       "%",
	nodeLess:      "<",
	nodeGreater:   ">",
	nodeEqual:     "=",
	nodeNotEqual:  "!=",
	nodeLessEq:    "<=",
	nodeGreaterEq: ">=",
	nodeAnd:       "&",
	nodeOr:        "|",
	nodeXor:       "^",
}

// isCondition reports whether a node evaluates to a truth value rather than a
// number.
func (n *node) isCondition() bool {
	switch n.kind {
	case nodeBool, nodeNot,
		nodeLess, nodeGreater, nodeEqual, nodeNotEqual, nodeLessEq, nodeGreaterEq,
		nodeAnd, nodeOr, nodeXor:
		return true
	case nodeExpr, nodeIf:
		return n.left.isCondition()
	case nodeCall, nodeFunc:
		return n.fn.body.isCondition()
	}
	return false
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node with alternating round and square brackets around each
// term.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	switch n.kind {
	case nodeExpr:
		n.left.fmt(b, square)
		return
	case nodeIf:
		b.WriteString("if ")
		n.cond.fmt(b, square)
		b.WriteString(" { ")
		n.left.fmt(b, square)
		b.WriteString(" } else { ")
		n.right.fmt(b, square)
		b.WriteString(" }")
		return
	case nodeFunc:
		b.WriteString("fn ")
		b.WriteString(n.fn.String())
		b.WriteString(" { ")
		n.fn.body.fmt(b, square)
		b.WriteString(" }")
		return
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteString("$#$")
	case nodeNum:
		b.WriteString(n.num.String())
	case nodeBool:
		b.WriteString(strconv.FormatBool(n.truth))
	case nodeName:
		b.WriteString(n.name)
	case nodeCall, nodeBuiltin:
		b.WriteString(n.name)
		al, ar := byte('['), byte(']')
		if square {
			al, ar = '(', ')'
		}
		b.WriteByte(al)
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b, square)
		}
		b.WriteByte(ar)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeNot:
		b.WriteByte('!')
		n.left.fmt(b, !square)
	default:
		op, ok := binops[n.kind]
		if !ok {
			panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
		}
		n.left.fmt(b, !square)
		b.WriteString(" " + op + " ")
		n.right.fmt(b, !square)
	}
}
