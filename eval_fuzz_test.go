//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("2//3 * 3//4")
	f.Add("(2 + 3i) * (2 - 3i)")
	f.Add("1×2")
	f.Add("pow(2, 62) * 4 / 0")
	f.Fuzz(func(t *testing.T, s string) {
		in := calc.NewInterpreter()
		if _, err := in.Eval("fn f(x, y) { if x < y { x } else { y % 2 } }"); err != nil {
			t.Fatal(err)
		}
		in.Eval(s)
	})
}
