package calc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/calc/num"
)

type lexed struct {
	Kind tokenKind
	Text string
	Col  int
}

func lexAll(src string, ascii bool) ([]lexed, error) {
	l := lexer{ascii: ascii}
	l.reset(src)
	var r []lexed
	for {
		tok, err := l.current()
		if err != nil {
			return r, err
		}
		if tok.kind == tokenEOF {
			return r, nil
		}
		r = append(r, lexed{tok.kind, tok.text, tok.col})
		l.advance()
	}
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []lexed
	}{
		{"empty", "", nil},
		{"space", " \t \r ", nil},
		{"natural", "0", []lexed{{tokenNum, "0", 1}}},
		{"naturals", "1 0", []lexed{{tokenNum, "1", 1}, {tokenNum, "0", 3}}},
		{"rational", "3//4", []lexed{{tokenNum, "3//4", 1}}},
		{"real", "2.5", []lexed{{tokenNum, "2.5", 1}}},
		{"imaginary", "3i", []lexed{{tokenNum, "3i", 1}}},
		{"realimaginary", "1.5i", []lexed{{tokenNum, "1.5i", 1}}},
		{"complex", "2.5 - 3.2i", []lexed{{tokenNum, "2.5", 1}, {tokenMinus, "-", 5}, {tokenNum, "3.2i", 7}}},
		{"neg", "-1", []lexed{{tokenMinus, "-", 1}, {tokenNum, "1", 2}}},
		{"arith", "1+2*3/4%5", []lexed{
			{tokenNum, "1", 1}, {tokenPlus, "+", 2}, {tokenNum, "2", 3}, {tokenMul, "*", 4},
			{tokenNum, "3", 5}, {tokenDiv, "/", 6}, {tokenNum, "4", 7}, {tokenRem, "%", 8}, {tokenNum, "5", 9},
		}},
		{"idents", "x_1 _y πr", []lexed{{tokenIdent, "x_1", 1}, {tokenIdent, "_y", 5}, {tokenIdent, "πr", 8}}},
		{"keywords", "fn if else", []lexed{{tokenIdent, "fn", 1}, {tokenIdent, "if", 4}, {tokenIdent, "else", 7}}},
		{"bools", "true false", []lexed{{tokenBool, "true", 1}, {tokenBool, "false", 6}}},
		{"compare", "< > = == != <= >=", []lexed{
			{tokenLess, "<", 1}, {tokenGreater, ">", 3}, {tokenEqual, "=", 5}, {tokenEqual, "==", 7},
			{tokenNotEqual, "!=", 10}, {tokenLessEq, "<=", 13}, {tokenGreaterEq, ">=", 16},
		}},
		{"unicode", "≤≥≠×÷", []lexed{
			{tokenLessEq, "≤", 1}, {tokenGreaterEq, "≥", 2}, {tokenNotEqual, "≠", 3}, {tokenMul, "×", 4}, {tokenDiv, "÷", 5},
		}},
		{"logic", "&|^!", []lexed{{tokenAnd, "&", 1}, {tokenOr, "|", 2}, {tokenXor, "^", 3}, {tokenNot, "!", 4}}},
		{"arrow", "-> - >", []lexed{{tokenArrow, "->", 1}, {tokenMinus, "-", 4}, {tokenGreater, ">", 6}}},
		{"punct", "{}(),;:", []lexed{
			{tokenBegin, "{", 1}, {tokenEnd, "}", 2}, {tokenLParen, "(", 3}, {tokenRParen, ")", 4},
			{tokenComma, ",", 5}, {tokenSemi, ";", 6}, {tokenColon, ":", 7},
		}},
		{"call", "f(x)", []lexed{{tokenIdent, "f", 1}, {tokenLParen, "(", 2}, {tokenIdent, "x", 3}, {tokenRParen, ")", 4}}},
		{"notequal-not", "!x", []lexed{{tokenNot, "!", 1}, {tokenIdent, "x", 2}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := lexAll(c.src, false)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if diff := cmp.Diff(c.tokens, toks); diff != "" {
				t.Errorf("%q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		ascii bool
	}{
		{"twodots", "1.2.3", false},
		{"ratdot", "3//4.5", false},
		{"dotrat", "2.5//2", false},
		{"ratrat", "1//2//3", false},
		{"digitafteri", "3i2", false},
		{"ratimag", "3//4i", false},
		{"imagimag", "3ii", false},
		{"nodenominator", "1//", false},
		{"letter", "1a", false},
		{"dollar", "$", false},
		{"asciionly", "1 ≤ 2", true},
		{"zerodenominator", "1//0", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := lexAll(c.src, c.ascii)
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("%q: want *LexError, got %#v", c.src, err)
			}
			if !errors.Is(err, ErrLexical) {
				t.Errorf("%q: %v is not lexical", c.src, err)
			}
			if errors.Is(err, ErrSyntax) || errors.Is(err, ErrEval) {
				t.Errorf("%q: %v has more than one category", c.src, err)
			}
			if le.Line() != 1 || le.Pos() < 1 {
				t.Errorf("%q: bad position %d:%d", c.src, le.Line(), le.Pos())
			}
		})
	}
}

func TestLexZeroDenominator(t *testing.T) {
	_, err := lexAll("1//0", false)
	var de *num.DivisionError
	if !errors.As(err, &de) {
		t.Errorf("1//0: want DivisionError inside LexError, got %v", err)
	}
}

func TestLexValues(t *testing.T) {
	cases := []struct {
		src  string
		kind num.Kind
		want string
	}{
		{"7", num.KindNatural, "7"},
		{"3//4", num.KindRational, "3 / 4"},
		{"6//8", num.KindRational, "3 / 4"},
		{"4//2", num.KindRational, "2 / 1"},
		{"2.5", num.KindReal, "2.5"},
		{"1.33", num.KindReal, "1.33"},
		{"3i", num.KindComplex, "0 + 3i"},
		{"1.5i", num.KindComplex, "0 + 1.5i"},
	}
	for _, c := range cases {
		var l lexer
		l.reset(c.src)
		tok, err := l.current()
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if tok.kind != tokenNum {
			t.Errorf("%q: want number, got %v", c.src, tok)
			continue
		}
		if k := tok.num.Kind(); k != c.kind {
			t.Errorf("%q: want kind %v, got %v", c.src, c.kind, k)
		}
		if s := tok.num.String(); s != c.want {
			t.Errorf("%q: want %s, got %s", c.src, c.want, s)
		}
	}
}

func TestLexPeek(t *testing.T) {
	var l lexer
	l.reset("a (")
	tok, err := l.current()
	if err != nil || tok.text != "a" {
		t.Fatalf("current: %v, %v", tok, err)
	}
	next, err := l.peek()
	if err != nil || next.kind != tokenLParen {
		t.Fatalf("peek: %v, %v", next, err)
	}
	if tok, _ := l.current(); tok.text != "a" {
		t.Errorf("peek consumed lookahead; now %v", tok)
	}
	l.advance()
	if tok, _ := l.current(); tok.kind != tokenLParen {
		t.Errorf("after advance: want (, got %v", tok)
	}
	l.advance()
	if next, _ := l.peek(); next.kind != tokenEOF {
		t.Errorf("peek past end of line: want EOF, got %v", next)
	}
}

func TestLexLines(t *testing.T) {
	var l lexer
	l.reset("1")
	l.reset("  x")
	tok, err := l.current()
	if err != nil {
		t.Fatal(err)
	}
	if tok.line != 2 || tok.col != 3 || tok.text != "x" {
		t.Errorf("want x at 2:3, got %v", tok)
	}
}
