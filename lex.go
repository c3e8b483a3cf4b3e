package calc

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/zephyrtronium/calc/num"
)

type token struct {
	kind tokenKind
	text string
	// num is the value of a number token.
	num  num.Number
	line int
	col  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.line) + ":" + strconv.Itoa(t.col)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the buffered line.
	tokenEOF
	// tokenNum is a natural, rational, real, or imaginary literal.
	tokenNum
	// tokenBool is true or false.
	tokenBool
	// tokenIdent is a variable, function, or keyword name.
	tokenIdent
	tokenBegin // {
	tokenEnd   // }

	tokenLess      // <
	tokenGreater   // >
	tokenEqual     // = or ==
	tokenNotEqual  // != or ≠
	tokenLessEq    // <= or ≤
	tokenGreaterEq // >= or ≥

	tokenAnd // &
	tokenOr  // |
	tokenXor // ^
	tokenNot // !

	tokenPlus  // +
	tokenMinus // -
	tokenMul   // * or ×
	tokenDiv   // / or ÷
	tokenRem   // %

	tokenLParen // (
	tokenRParen // )
	tokenSemi   // ;
	tokenColon  // :
	tokenComma  // ,
	tokenArrow  // ->
)

var tokennames = [...]string{
	tokenNone:      "None",
	tokenEOF:       "EOF",
	tokenNum:       "Num",
	tokenBool:      "Bool",
	tokenIdent:     "Ident",
	tokenBegin:     "Begin",
	tokenEnd:       "End",
	tokenLess:      "Less",
	tokenGreater:   "Greater",
	tokenEqual:     "Equal",
	tokenNotEqual:  "NotEqual",
	tokenLessEq:    "LessEq",
	tokenGreaterEq: "GreaterEq",
	tokenAnd:       "And",
	tokenOr:        "Or",
	tokenXor:       "Xor",
	tokenNot:       "Not",
	tokenPlus:      "Plus",
	tokenMinus:     "Minus",
	tokenMul:       "Mul",
	tokenDiv:       "Div",
	tokenRem:       "Rem",
	tokenLParen:    "LParen",
	tokenRParen:    "RParen",
	tokenSemi:      "Semi",
	tokenColon:     "Colon",
	tokenComma:     "Comma",
	tokenArrow:     "Arrow",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokennames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokennames[k]
}

// describe names a token kind for error messages.
func (k tokenKind) describe() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenNum:
		return "number"
	case tokenBool:
		return "boolean"
	case tokenIdent:
		return "identifier"
	}
	if s := optexts[k]; s != "" {
		return strconv.Quote(s)
	}
	return k.String()
}

// optexts is the canonical spelling of each operator and punctuation token.
var optexts = map[tokenKind]string{
	tokenBegin:     "{",
	tokenEnd:       "}",
	tokenLess:      "<",
	tokenGreater:   ">",
	tokenEqual:     "=",
	tokenNotEqual:  "!=",
	tokenLessEq:    "<=",
	tokenGreaterEq: ">=",
	tokenAnd:       "&",
	tokenOr:        "|",
	tokenXor:       "^",
	tokenNot:       "!",
	tokenPlus:      "+",
	tokenMinus:     "-",
	tokenMul:       "*",
	tokenDiv:       "/",
	tokenRem:       "%",
	tokenLParen:    "(",
	tokenRParen:    ")",
	tokenSemi:      ";",
	tokenColon:     ":",
	tokenComma:     ",",
	tokenArrow:     "->",
}

// lexer scans tokens from one buffered line at a time. Tokens never span
// lines; reset replaces the buffer entirely.
type lexer struct {
	src []rune
	pos int
	// line is the 1-based number of the buffered line.
	line int
	// cur is the lookahead token, scanned lazily. Its kind is tokenNone when
	// nothing has been scanned since the last advance.
	cur token
	// ascii disables the Unicode spellings of operators.
	ascii bool
}

// reset replaces the lexer's buffer with a new line and clears the
// lookahead.
func (l *lexer) reset(text string) {
	l.src = []rune(text)
	l.pos = 0
	l.line++
	l.cur = token{}
}

// current returns the lookahead token, scanning it if needed. The token is
// not consumed.
func (l *lexer) current() (token, error) {
	if l.cur.kind == tokenNone {
		tok, err := l.scan()
		if err != nil {
			return tok, err
		}
		l.cur = tok
	}
	return l.cur, nil
}

// advance consumes the lookahead token.
func (l *lexer) advance() {
	l.cur = token{}
}

// peek returns the token following the lookahead without consuming either.
// It never looks past the end of the buffered line.
func (l *lexer) peek() (token, error) {
	if _, err := l.current(); err != nil {
		return token{}, err
	}
	pos := l.pos
	tok, err := l.scan()
	l.pos = pos
	return tok, err
}

// at returns the rune at position i, or -1 past the end.
func (l *lexer) at(i int) rune {
	if i >= len(l.src) {
		return -1
	}
	return l.src[i]
}

// accept consumes the next rune if it is r.
func (l *lexer) accept(r rune) bool {
	if l.at(l.pos) == r {
		l.pos++
		return true
	}
	return false
}

// scan scans the next token from the buffer.
func (l *lexer) scan() (token, error) {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
	tok := token{line: l.line, col: l.pos + 1}
	if l.pos >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	start := l.pos
	r := l.src[l.pos]
	switch {
	case '0' <= r && r <= '9':
		return l.scanNum(tok)
	case r == '_', unicode.IsLetter(r):
		l.scanIdent()
		tok.text = string(l.src[start:l.pos])
		switch tok.text {
		case "true", "false":
			tok.kind = tokenBool
		default:
			tok.kind = tokenIdent
		}
		return tok, nil
	}
	l.pos++
	switch r {
	case '{':
		tok.kind = tokenBegin
	case '}':
		tok.kind = tokenEnd
	case '(':
		tok.kind = tokenLParen
	case ')':
		tok.kind = tokenRParen
	case '<':
		tok.kind = tokenLess
		if l.accept('=') {
			tok.kind = tokenLessEq
		}
	case '>':
		tok.kind = tokenGreater
		if l.accept('=') {
			tok.kind = tokenGreaterEq
		}
	case '=':
		l.accept('=')
		tok.kind = tokenEqual
	case '!':
		tok.kind = tokenNot
		if l.accept('=') {
			tok.kind = tokenNotEqual
		}
	case '&':
		tok.kind = tokenAnd
	case '|':
		tok.kind = tokenOr
	case '^':
		tok.kind = tokenXor
	case '+':
		tok.kind = tokenPlus
	case '-':
		tok.kind = tokenMinus
		if l.accept('>') {
			tok.kind = tokenArrow
		}
	case '*':
		tok.kind = tokenMul
	case '/':
		tok.kind = tokenDiv
	case '%':
		tok.kind = tokenRem
	case ';':
		tok.kind = tokenSemi
	case ':':
		tok.kind = tokenColon
	case ',':
		tok.kind = tokenComma
	default:
		if k := unicodeops[r]; k != tokenNone && !l.ascii {
			tok.kind = k
			break
		}
		return tok, l.error(tok, "", start, nil)
	}
	tok.text = string(l.src[start:l.pos])
	return tok, nil
}

// unicodeops maps the Unicode spellings of operators to their tokens.
var unicodeops = map[rune]tokenKind{
	'≤': tokenLessEq,
	'≥': tokenGreaterEq,
	'≠': tokenNotEqual,
	'×': tokenMul,
	'÷': tokenDiv,
}

func (l *lexer) scanIdent() {
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return
		}
		l.pos++
	}
}

// scanNum scans a numeric literal. The integer part accumulates digits until
// a // switches to the denominator of a rational, a . switches to a real, or
// an i marks the literal imaginary. The three forms exclude each other.
func (l *lexer) scanNum(tok token) (token, error) {
	start := l.pos
	var n, d strings.Builder
	var rat, dot, imag bool
scan:
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case '0' <= r && r <= '9':
			l.pos++
			switch {
			case imag:
				return tok, l.error(tok, "number", start, nil)
			case rat:
				d.WriteRune(r)
			default:
				n.WriteRune(r)
			}
		case r == '/' && l.at(l.pos+1) == '/':
			l.pos += 2
			if rat || dot || imag {
				return tok, l.error(tok, "number", start, nil)
			}
			rat = true
		case r == '.':
			l.pos++
			if rat || dot || imag {
				return tok, l.error(tok, "number", start, nil)
			}
			dot = true
			n.WriteRune(r)
		case r == 'i':
			l.pos++
			if rat || imag {
				return tok, l.error(tok, "number", start, nil)
			}
			imag = true
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			// A letter where a digit is expected.
			l.pos++
			return tok, l.error(tok, "number", start, nil)
		default:
			break scan
		}
	}
	if rat && d.Len() == 0 {
		return tok, l.error(tok, "number", start, nil)
	}
	var err error
	switch {
	case imag:
		tok.num, err = num.ParseImaginary(n.String())
	case dot:
		tok.num, err = num.ParseReal(n.String())
	case rat:
		tok.num, err = num.ParseRational(n.String(), d.String())
	default:
		tok.num, err = num.ParseNatural(n.String())
	}
	if err != nil {
		return tok, l.error(tok, "number", start, err)
	}
	tok.kind = tokenNum
	tok.text = string(l.src[start:l.pos])
	return tok, nil
}

func (l *lexer) error(tok token, kind string, start int, err error) error {
	return &LexError{
		Text: string(l.src[start:l.pos]),
		Kind: kind,
		Ln:   tok.line,
		Col:  l.pos,
		Err:  err,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, including the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Ln is the line number of the error.
	Ln int
	// Col is the column of the invalid rune.
	Col int
	// Err is the error converting a number literal, if any.
	Err error
}

func (err *LexError) Error() string {
	pos := "line " + strconv.Itoa(err.Ln) + ", column " + strconv.Itoa(err.Col)
	msg := "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	if err.Kind != "" {
		msg = "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
	}
	if err.Err != nil {
		msg += " (" + err.Err.Error() + ")"
	}
	return msg
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Line() int {
	return err.Ln
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Is(target error) bool {
	return target == ErrLexical
}
