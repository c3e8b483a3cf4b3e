package calc_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/num"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add", "2 + 2", "4"},
		{"rational-product", "2//3 * 3//4", "1 / 2"},
		{"complex-product", "(2 + 3i) * (2 - 3i)", "13 + 0i"},
		{"rational-real", "3//4 + 2.5", "3.25"},
		{"combinators", "2 < 3 & 1 < 4", "true"},
		{"natural-rational", "2 + 3//4", "11 / 4"},
		{"whole-rational", "3//8 + 5//8", "1 / 1"},
		{"imaginary-natural", "3i - 2", "-2 + 3i"},
		{"complex-quotient", "(1 + 3i) / 2", "0.5 + 1.5i"},
		{"real-over-rational", "2.5 / 1//4", "10"},
		{"double-neg", "--2", "2"},
		{"precedence", "2 + 2 * 2 - 4 / 2", "4"},
		{"complex-literal", "2.5 - 3.2i", "2.5 - 3.2i"},
		{"truncating", "7 / 2", "3"},
		{"natural-sub", "2 - 3", "-1"},
		{"natural-sub-pos", "5 - 3", "2"},
		{"integer-div", "-7 / 2", "-3"},
		{"rem", "7 % 3", "1"},
		{"neg-rem", "-7 % 3", "-1"},
		{"rational-div", "1//2 / 1//4", "2 / 1"},
		{"real", "1.5 * 2", "3"},
		{"rational-literal", "4//12", "1 / 3"},
		{"neg-rational", "-(3//4)", "-3 / 4"},
		{"plus", "+5", "5"},
		{"trailing-semi", "1 + 1;", "2"},
		{"tolerance", "0.1 + 0.2 = 0.3", "true"},
		{"exact-equal", "3//4 = 0.75", "true"},
		{"not-equal", "1 != 2", "true"},
		{"unicode-compare", "2 ≥ 2", "true"},
		{"less-false", "3 < 2", "false"},
		{"xor", "1 < 2 ^ 2 < 3", "false"},
		{"or", "1 > 2 | 2 < 3", "true"},
		{"not", "!1 > 2", "true"},
		{"bool", "true", "true"},
		{"complex-order-real", "1 + 2i < 1 + 3i", "true"},
		{"complex-order-imag", "2 + 1i > 1 + 1i", "true"},
		{"complex-equal", "2 + 0i = 2", "true"},
		{"if-then", "if 1 < 2 { 10 } else { 20 }", "10"},
		{"if-else", "if 1 > 2 { 10 } else { 20 }", "20"},
		{"if-cond", "if true { 1 < 2 } else { false }", "true"},
		{"short-circuit", "if true { 1 } else { undefined_var }", "1"},
		{"short-circuit-else", "if false { undefined_var } else { 2 }", "2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := calc.NewInterpreter()
			r, err := in.Eval(c.src)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("%q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestEvalKinds(t *testing.T) {
	cases := []struct {
		src  string
		kind num.Kind
	}{
		{"2 + 2", num.KindNatural},
		{"2 - 3", num.KindInteger},
		{"-2", num.KindInteger},
		{"abs(0 - 2)", num.KindNatural},
		{"1//2 + 1//2", num.KindRational},
		{"1//2 + 0.5", num.KindReal},
		{"1 + 0i", num.KindComplex},
		{"norm(3 + 4i)", num.KindReal},
		{"9223372036854775807 + 1", num.KindReal},
		{"9223372036854775807 * 2", num.KindReal},
		{"0 - 9223372036854775807 - 1", num.KindReal},
		{"1//4294967296 * 1//4294967296", num.KindReal},
		{"1 / (1//4294967296 * 1//4294967296)", num.KindReal},
		{"1//4611686018427387904 + 1//4611686018427387904", num.KindRational},
	}
	for _, c := range cases {
		r, err := calc.NewInterpreter().Eval(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if k := r.Num.Kind(); k != c.kind {
			t.Errorf("%q: want %v, got %v (%v)", c.src, c.kind, k, r)
		}
	}
}

func TestPrintRoundTrip(t *testing.T) {
	cases := []string{
		"123",
		"0 - 45",
		"2.5",
		"0.1 + 0.2",
		"2.5i",
		"0 + 2.5i",
		"2.5 - 3.2i",
		"(1 + 3i) / 2",
		"3i - 2",
		"true",
		"1 < 0",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			in := calc.NewInterpreter()
			r, err := in.Eval(src)
			if err != nil {
				t.Fatalf("%q: %v", src, err)
			}
			again, err := in.Eval(r.String())
			if err != nil {
				t.Fatalf("%q printed as %q: %v", src, r, err)
			}
			if again.String() != r.String() {
				t.Errorf("%q printed as %q, which evaluates to %q", src, r, again)
			}
			if r.IsBool != again.IsBool || !r.IsBool && r.Num.Kind() != again.Num.Kind() {
				t.Errorf("%q printed as %q changes kind", src, r)
			}
		})
	}
}

func TestSession(t *testing.T) {
	lines := []string{
		"fn inc(num) { num + 1 }",
		"inc(4)",
		"fn add(a: natural, b: natural) -> natural { a + b }",
		"add(inc(1), 3//4)",
		"fn positive(x) { x > 0 }",
		"positive(0 - 3)",
		"fn sign(x) { if x < 0 { 0 - 1 } else { if x > 0 { 1 } else { 0 } } }",
		"sign(0 - 5) + sign(5) + sign(0)",
		"fn outer(x) { inc(x) * 2 }",
		"outer(2)",
	}
	want := []string{
		"# function inc(1) ",
		"< 5",
		"# function add(2) ",
		"< 11 / 4",
		"# function positive(1) ",
		"< false",
		"# function sign(1) ",
		"< 0",
		"# function outer(1) ",
		"< 6",
	}
	in := calc.NewInterpreter()
	var got []string
	for _, line := range lines {
		r, err := in.Eval(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		got = append(got, r.Marked())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("session output (-want +got):\n%s", diff)
	}
}

func TestRun(t *testing.T) {
	src := calc.Lines(
		"fn absolute(x) {",
		"if x < 0 {",
		"-x",
		"} else {",
		"x",
		"}",
		"}",
		"",
		"absolute(0 - 3) + absolute(4)",
		"1 +",
		"if true {",
	)
	var got []string
	err := calc.NewInterpreter().Run(src, func(s *calc.Stmt, r *calc.Result, err error) {
		if err != nil {
			got = append(got, fmt.Sprintf("%T", err))
			return
		}
		if s == nil {
			t.Errorf("no statement for %v", r)
		}
		got = append(got, r.String())
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"function absolute(1)", "7", "*calc.TokenError", "*calc.IncompleteError"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("run output (-want +got):\n%s", diff)
	}
}

func TestRunSourceError(t *testing.T) {
	bad := errors.New("bad")
	src := calc.LineSourceFunc(func() (string, error) { return "", bad })
	err := calc.NewInterpreter().Run(src, func(*calc.Stmt, *calc.Result, error) {})
	if !errors.Is(err, bad) {
		t.Errorf("want source error, got %v", err)
	}
}

func TestRunStatements(t *testing.T) {
	lines := []string{"1 + 2 * 3", "fn f(x) { x % 2 = 0 }", "f(4)", "1 +)"}
	var want []string
	ref := calc.NewInterpreter()
	for _, line := range lines {
		s, err := ref.Parse(line)
		if err != nil {
			want = append(want, "<nil>")
			continue
		}
		want = append(want, s.String())
	}
	var got []string
	err := calc.NewInterpreter().Run(calc.Lines(lines...), func(s *calc.Stmt, r *calc.Result, err error) {
		if s == nil {
			got = append(got, "<nil>")
			return
		}
		got = append(got, s.String())
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statements (-want +got):\n%s", diff)
	}
}

func TestScopes(t *testing.T) {
	in := calc.NewInterpreter()
	for _, line := range []string{
		"fn f(x) { x * 10 }",
		"fn g(x, y) { f(y) + x }",
	} {
		if _, err := in.Eval(line); err != nil {
			t.Fatal(err)
		}
	}
	r, err := in.Eval("g(1, 2)")
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "21" {
		t.Errorf("want 21, got %v", r)
	}
	// Callees see only their own parameters.
	if _, err := in.Eval("fn h(y) { y + leak }"); err != nil {
		t.Fatal(err)
	}
	if _, err := in.Eval("fn k(leak) { h(1) }"); err != nil {
		t.Fatal(err)
	}
	_, err = in.Eval("k(5)")
	var ne *calc.NameError
	if !errors.As(err, &ne) || ne.Name != "leak" {
		t.Errorf("want NameError for leak, got %v", err)
	}
}

func TestValueAndTruth(t *testing.T) {
	p := calc.NewParser()
	p.Append("x * 2")
	s, err := p.ParseLine()
	if err != nil {
		t.Fatal(err)
	}
	v, err := calc.Value(s, calc.Scope{"x": num.NewInteger(-4)})
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "-8" {
		t.Errorf("want -8, got %v", v)
	}
	if _, err := calc.Truth(s, calc.Scope{"x": num.NewInteger(1)}); reflect.TypeOf(err) != reflect.TypeOf(new(calc.TypeError)) {
		t.Errorf("want TypeError taking truth of number, got %v", err)
	}

	p.Append("x < 3")
	if s, err = p.ParseLine(); err != nil {
		t.Fatal(err)
	}
	if !s.IsCondition() {
		t.Error("comparison is not a condition")
	}
	b, err := calc.Truth(s, calc.Scope{"x": num.NewReal(2.5)})
	if err != nil || !b {
		t.Errorf("want true, got %t, %v", b, err)
	}
	if _, err := calc.Value(s, nil); reflect.TypeOf(err) != reflect.TypeOf(new(calc.TypeError)) {
		t.Errorf("want TypeError taking value of condition, got %v", err)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		cat  error
	}{
		{"div-natural", "1 / 0", new(num.DivisionError), calc.ErrEval},
		{"div-integer", "(0 - 1) / 0", new(num.DivisionError), calc.ErrEval},
		{"div-rational", "1//2 / (0 * 1//2)", new(num.DivisionError), calc.ErrEval},
		{"div-real", "1.5 / 0", new(num.DivisionError), calc.ErrEval},
		{"div-complex", "2i / 0", new(num.DivisionError), calc.ErrEval},
		{"rem-zero", "1 % 0", new(num.DivisionError), calc.ErrEval},
		{"rem-real", "2.5 % 1", new(num.KindError), calc.ErrEval},
		{"rem-rational", "1//2 % 1", new(num.KindError), calc.ErrEval},
		{"name", "x + 1", new(calc.NameError), calc.ErrEval},
		{"combinator-strict", "true | x > 1", new(calc.NameError), calc.ErrEval},
		{"number-as-truth", "1 & true", new(calc.TypeError), calc.ErrEval},
		{"if-number", "if 1 { 2 } else { 3 }", new(calc.TypeError), calc.ErrEval},
		{"not-number", "!(1)", new(calc.TypeError), calc.ErrEval},
		{"truth-as-number", "2 + (1 < 2)", new(calc.TypeError), calc.ErrEval},
		{"bool-arith", "true * 2", new(calc.TypeError), calc.ErrEval},
		{"unordered", "1 + 2i < 2 + 1i", new(calc.OrderError), calc.ErrEval},
		{"inv-zero", "inv(0)", new(num.DivisionError), calc.ErrEval},
		{"ln-zero", "ln(0)", new(calc.DomainError), calc.ErrEval},
		{"ln-negative", "ln(0 - 1)", new(calc.DomainError), calc.ErrEval},
		{"exp-complex", "exp(1i)", new(calc.DomainError), calc.ErrEval},
		{"pow-negative-real", "pow(0 - 2, 0.5)", new(calc.DomainError), calc.ErrEval},
		{"syntax", "1 +", new(calc.TokenError), calc.ErrSyntax},
		{"undefined", "f(1)", new(calc.UndefinedFunctionError), calc.ErrSyntax},
		{"lex", "1.2.3", new(calc.LexError), calc.ErrLexical},
	}
	cats := []error{calc.ErrLexical, calc.ErrSyntax, calc.ErrEval}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.NewInterpreter().Eval(c.src)
			if err == nil {
				t.Fatalf("%q: want error, got %v", c.src, r)
			}
			target := reflect.New(reflect.TypeOf(c.err))
			if !errors.As(err, target.Interface()) {
				t.Errorf("%q: want %T, got %#v", c.src, c.err, err)
			}
			for _, cat := range cats {
				if errors.Is(err, cat) != (cat == c.cat) {
					t.Errorf("%q: errors.Is(%v, %v) = %t", c.src, err, cat, !(cat == c.cat))
				}
			}
		})
	}
}

func TestIsDivisionByZero(t *testing.T) {
	_, err := calc.NewInterpreter().Eval("4 / (2 - 2)")
	if !calc.IsDivisionByZero(err) {
		t.Errorf("want division by zero, got %v", err)
	}
	_, err = calc.NewInterpreter().Eval("x")
	if calc.IsDivisionByZero(err) {
		t.Errorf("name error is division by zero: %v", err)
	}
}

func TestFunctionValue(t *testing.T) {
	p := calc.NewParser()
	p.Append("fn f(x) { x }")
	s, err := p.ParseLine()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := calc.Value(s, nil); reflect.TypeOf(err) != reflect.TypeOf(new(calc.TypeError)) {
		t.Errorf("want TypeError for value of definition, got %v", err)
	}
	r, err := s.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if r.Func == nil || r.Func.Name != "f" {
		t.Errorf("wrong result %#v", r)
	}
	if got := r.Marked(); got != "# function f(1) " {
		t.Errorf("wrong marked form %q", got)
	}
}

func TestResultFormat(t *testing.T) {
	cases := []struct {
		src    string
		plain  string
		marked string
	}{
		{"2 + 2", "4", "< 4"},
		{"1 < 2", "true", "< true"},
		{"3//4", "3 / 4", "< 3 / 4"},
		{"fn double(x) { x * 2 }", "function double(1)", "# function double(1) "},
	}
	for _, c := range cases {
		r, err := calc.NewInterpreter().Eval(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if got := r.String(); got != c.plain {
			t.Errorf("%q: want plain %q, got %q", c.src, c.plain, got)
		}
		if got := r.Marked(); got != c.marked {
			t.Errorf("%q: want marked %q, got %q", c.src, c.marked, got)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	in := calc.NewInterpreter()
	if _, err := in.Eval("fn f(x, y) { if x < y { x * y + 1//2 } else { x - y } }"); err != nil {
		b.Fatal(err)
	}
	p := in.Parser()
	p.Append("f(3, 4) + f(2.5, 1) * (2 + 3i)")
	s, err := p.ParseLine()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Eval()
	}
}

func Example() {
	in := calc.NewInterpreter()
	for _, line := range []string{
		"2//3 * 3//4",
		"(2 + 3i) * (2 - 3i)",
		"fn inc(num) { num + 1 }",
		"inc(4)",
	} {
		r, err := in.Eval(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// 1 / 2
	// 13 + 0i
	// function inc(1)
	// 5
}
