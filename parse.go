package calc

import (
	"errors"
	"io"
	"strconv"
)

// Line = Function | Statement [';']
// Function = 'fn' ident '(' [Param {',' Param}] ')' ['->' ident {',' ident}] '{' Statement '}'
// Param = ident [':' ident]
// Statement = 'if' Logic '{' Statement '}' 'else' '{' Statement '}' | Logic
// Logic = Condition {('&' | '|' | '^') Condition}
// Condition = '!' Logic | Expr [Cmp Expr]
// Cmp = '<' | '>' | '=' | '==' | '!=' | '≠' | '<=' | '≤' | '>=' | '≥'
// Expr = Term {('+' | '-') Term}
// Term = Factor {('*' | '×' | '/' | '÷' | '%') Factor}
// Factor = ('+' | '-') Factor | num | bool | Call | ident | '(' Logic ')'
// Call = funcname '(' [Expr {',' Expr}] ')' | constname

// Stmt is a parsed line that can be evaluated.
type Stmt struct {
	n *node
}

// Func returns the function the statement defines, or nil if it is not a
// definition.
func (s *Stmt) Func() *Function {
	if s.n.kind != nodeFunc {
		return nil
	}
	return s.n.fn
}

// IsCondition reports whether the statement evaluates to a truth value.
func (s *Stmt) IsCondition() bool {
	return s.n.isCondition()
}

// String formats the parsed statement with each term bracketed.
func (s *Stmt) String() string {
	return s.n.String()
}

// Parser parses lines of input. Function definitions accumulate in the
// parser, so later lines can call functions defined by earlier ones.
type Parser struct {
	lex      lexer
	funcs    Functions
	builtins map[string]Func
	src      LineSource
	// open lists the fn and if constructs the parse has begun but not
	// finished, innermost last. While it is non-empty, the end of a line
	// requests another from src.
	open []string
	// def is the function whose body is being parsed, if any.
	def *Function
}

// NewParser creates a parser.
func NewParser(opts ...ParseOption) *Parser {
	p := Parser{builtins: make(map[string]Func, len(globalfuncs))}
	for k, v := range globalfuncs {
		p.builtins[k] = v
	}
	for _, opt := range opts {
		opt.parseOption(&p)
	}
	return &p
}

func (p *Parser) setBuiltin(name string, fn Func) {
	if fn == nil {
		delete(p.builtins, name)
		return
	}
	p.builtins[name] = fn
}

// Functions returns the table of functions the parser has defined.
func (p *Parser) Functions() *Functions {
	return &p.funcs
}

// Append buffers a line for the next call to ParseLine, discarding anything
// left over from the previous line.
func (p *Parser) Append(line string) {
	p.lex.reset(line)
}

// ParseLine parses the buffered line as one statement. If the line ends
// inside a function definition or if statement, ParseLine requests
// continuation lines from the parser's source, blocking until they arrive.
//
// A successful function definition is added to the parser's function table
// before ParseLine returns.
func (p *Parser) ParseLine() (*Stmt, error) {
	p.open = p.open[:0]
	p.def = nil
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	var n *node
	switch {
	case tok.kind == tokenEOF:
		return nil, &EmptyExpressionError{Ln: tok.line, Col: tok.col}
	case tok.kind == tokenIdent && tok.text == "fn":
		n, err = p.function(tok)
	default:
		n, err = p.statement()
	}
	if err != nil {
		return nil, err
	}
	tok, err = p.current()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenSemi {
		p.lex.advance()
		if tok, err = p.current(); err != nil {
			return nil, err
		}
	}
	if tok.kind != tokenEOF {
		return nil, unexpected(tok, "end of input")
	}
	if n.kind == nodeFunc {
		p.funcs.define(n.fn)
	}
	return &Stmt{n: n}, nil
}

// current returns the lookahead token. At the end of a line inside an
// unfinished construct, it blocks on the line source for another line.
func (p *Parser) current() (token, error) {
	for {
		tok, err := p.lex.current()
		if err != nil || tok.kind != tokenEOF || len(p.open) == 0 {
			return tok, err
		}
		if err := p.more(tok); err != nil {
			return tok, err
		}
	}
}

// more replaces the lexer's buffer with the next line from the source.
func (p *Parser) more(at token) error {
	incomplete := &IncompleteError{Ln: at.line, Col: at.col, Construct: p.open[len(p.open)-1]}
	if p.src == nil {
		return incomplete
	}
	line, err := p.src.NextLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return incomplete
		}
		return err
	}
	p.lex.reset(line)
	return nil
}

// expect consumes the lookahead token if it has kind k.
func (p *Parser) expect(k tokenKind) (token, error) {
	tok, err := p.current()
	if err != nil {
		return tok, err
	}
	if tok.kind != k {
		return tok, unexpected(tok, k.describe())
	}
	p.lex.advance()
	return tok, nil
}

// unexpected creates a TokenError for tok.
func unexpected(tok token, want string) error {
	return &TokenError{Ln: tok.line, Col: tok.col, Got: tokdesc(tok), Want: want}
}

// tokdesc describes a token for error messages.
func tokdesc(tok token) string {
	switch tok.kind {
	case tokenNum, tokenBool, tokenIdent:
		return tok.kind.describe() + " " + strconv.Quote(tok.text)
	}
	return tok.kind.describe()
}

func (p *Parser) push(construct string) {
	p.open = append(p.open, construct)
}

func (p *Parser) pop() {
	p.open = p.open[:len(p.open)-1]
}

// function parses a function definition. The lookahead is the fn keyword.
func (p *Parser) function(kw token) (*node, error) {
	p.lex.advance()
	p.push("fn")
	name, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	f := &Function{Name: name.text}
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenRParen {
		for {
			id, err := p.expect(tokenIdent)
			if err != nil {
				return nil, err
			}
			if f.param(id.text) >= 0 {
				return nil, &TokenError{Ln: id.line, Col: id.col, Got: "duplicate parameter " + id.text, Want: "parameter name"}
			}
			prm := Param{Name: id.text}
			if tok, err = p.current(); err != nil {
				return nil, err
			}
			if tok.kind == tokenColon {
				p.lex.advance()
				ty, err := p.expect(tokenIdent)
				if err != nil {
					return nil, err
				}
				prm.Type = ty.text
			}
			f.Params = append(f.Params, prm)
			if tok, err = p.current(); err != nil {
				return nil, err
			}
			if tok.kind != tokenComma {
				break
			}
			p.lex.advance()
		}
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	if tok, err = p.current(); err != nil {
		return nil, err
	}
	if tok.kind == tokenArrow {
		p.lex.advance()
		for {
			ty, err := p.expect(tokenIdent)
			if err != nil {
				return nil, err
			}
			f.Returns = append(f.Returns, ty.text)
			if tok, err = p.current(); err != nil {
				return nil, err
			}
			if tok.kind != tokenComma {
				break
			}
			p.lex.advance()
		}
	}
	if _, err := p.expect(tokenBegin); err != nil {
		return nil, err
	}
	p.def = f
	body, err := p.statement()
	p.def = nil
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEnd); err != nil {
		return nil, err
	}
	p.pop()
	f.body = body
	return &node{kind: nodeFunc, name: f.Name, fn: f, line: kw.line, col: kw.col}, nil
}

// statement parses an if statement or a logical expression.
func (p *Parser) statement() (*node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenIdent || tok.text != "if" {
		x, err := p.logic()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeExpr, left: x, line: tok.line, col: tok.col}, nil
	}
	p.lex.advance()
	p.push("if")
	cond, err := p.logic()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	kw, err := p.current()
	if err != nil {
		return nil, err
	}
	if kw.kind != tokenIdent || kw.text != "else" {
		return nil, &MissingElseError{Ln: kw.line, Col: kw.col, Got: tokdesc(kw)}
	}
	p.lex.advance()
	els, err := p.block()
	if err != nil {
		return nil, err
	}
	p.pop()
	return &node{kind: nodeIf, cond: cond, left: then, right: els, line: tok.line, col: tok.col}, nil
}

// block parses a braced statement.
func (p *Parser) block() (*node, error) {
	if _, err := p.expect(tokenBegin); err != nil {
		return nil, err
	}
	s, err := p.statement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenEnd); err != nil {
		return nil, err
	}
	return s, nil
}

var logicops = map[tokenKind]nodeKind{
	tokenAnd: nodeAnd,
	tokenOr:  nodeOr,
	tokenXor: nodeXor,
}

func (p *Parser) logic() (*node, error) {
	left, err := p.condition()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		k, ok := logicops[tok.kind]
		if !ok {
			return left, nil
		}
		p.lex.advance()
		right, err := p.condition()
		if err != nil {
			return nil, err
		}
		left = &node{kind: k, left: left, right: right, line: tok.line, col: tok.col}
	}
}

var cmpops = map[tokenKind]nodeKind{
	tokenLess:      nodeLess,
	tokenGreater:   nodeGreater,
	tokenEqual:     nodeEqual,
	tokenNotEqual:  nodeNotEqual,
	tokenLessEq:    nodeLessEq,
	tokenGreaterEq: nodeGreaterEq,
}

func (p *Parser) condition() (*node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenNot {
		p.lex.advance()
		x, err := p.logic()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNot, left: x, line: tok.line, col: tok.col}, nil
	}
	left, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok, err = p.current(); err != nil {
		return nil, err
	}
	k, ok := cmpops[tok.kind]
	if !ok {
		return left, nil
	}
	p.lex.advance()
	right, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &node{kind: k, left: left, right: right, line: tok.line, col: tok.col}, nil
}

func (p *Parser) expression() (*node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		var k nodeKind
		switch tok.kind {
		case tokenPlus:
			k = nodeAdd
		case tokenMinus:
			k = nodeSub
		default:
			return left, nil
		}
		p.lex.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &node{kind: k, left: left, right: right, line: tok.line, col: tok.col}
	}
}

func (p *Parser) term() (*node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		var k nodeKind
		switch tok.kind {
		case tokenMul:
			k = nodeMul
		case tokenDiv:
			k = nodeDiv
		case tokenRem:
			k = nodeRem
		default:
			return left, nil
		}
		p.lex.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &node{kind: k, left: left, right: right, line: tok.line, col: tok.col}
	}
}

func (p *Parser) factor() (*node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenPlus, tokenMinus:
		p.lex.advance()
		x, err := p.factor()
		if err != nil {
			return nil, err
		}
		k := nodeNop
		if tok.kind == tokenMinus {
			k = nodeNeg
		}
		return &node{kind: k, left: x, line: tok.line, col: tok.col}, nil
	case tokenNum:
		p.lex.advance()
		return &node{kind: nodeNum, name: tok.text, num: tok.num, line: tok.line, col: tok.col}, nil
	case tokenBool:
		p.lex.advance()
		return &node{kind: nodeBool, name: tok.text, truth: tok.text == "true", line: tok.line, col: tok.col}, nil
	case tokenIdent:
		return p.ident(tok)
	case tokenLParen:
		p.lex.advance()
		x, err := p.logic()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, unexpected(tok, "expression")
}

// ident parses a variable, constant, or call. Parameters of the function
// being defined shadow functions of the same name.
func (p *Parser) ident(tok token) (*node, error) {
	variable := &node{kind: nodeName, name: tok.text, line: tok.line, col: tok.col}
	if p.def != nil && p.def.param(tok.text) >= 0 {
		p.lex.advance()
		return variable, nil
	}
	next, err := p.lex.peek()
	if err != nil {
		return nil, err
	}
	if next.kind != tokenLParen {
		p.lex.advance()
		if p.funcs.Lookup(tok.text) == nil {
			if b := p.builtins[tok.text]; b != nil && b.CanCall(0) {
				return &node{kind: nodeBuiltin, name: tok.text, builtin: b, line: tok.line, col: tok.col}, nil
			}
		}
		return variable, nil
	}
	f := p.funcs.Lookup(tok.text)
	var b Func
	if f == nil {
		b = p.builtins[tok.text]
		if b == nil {
			return nil, &UndefinedFunctionError{Ln: tok.line, Col: tok.col, Func: tok.text}
		}
	}
	p.lex.advance()
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	args, err := p.args()
	if err != nil {
		return nil, err
	}
	if f != nil {
		if len(args) != f.Arity() {
			return nil, &CallError{Ln: tok.line, Col: tok.col, Func: tok.text, Len: len(args)}
		}
		return &node{kind: nodeCall, name: tok.text, fn: f, args: args, line: tok.line, col: tok.col}, nil
	}
	if !b.CanCall(len(args)) {
		return nil, &CallError{Ln: tok.line, Col: tok.col, Func: tok.text, Len: len(args)}
	}
	return &node{kind: nodeBuiltin, name: tok.text, builtin: b, args: args, line: tok.line, col: tok.col}, nil
}

// args parses a call's argument list after the opening parenthesis, through
// the closing one.
func (p *Parser) args() ([]*node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenRParen {
		p.lex.advance()
		return nil, nil
	}
	var args []*node
	for {
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, x)
		if tok, err = p.current(); err != nil {
			return nil, err
		}
		if tok.kind != tokenComma {
			break
		}
		p.lex.advance()
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	return args, nil
}
