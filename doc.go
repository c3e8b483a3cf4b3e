// Package calc implements an interactive calculator over a numeric tower of
// natural, integer, rational, real, and complex numbers.
//
// Each line is a statement. "2//3 * 3//4" is an exact rational product, and
// "3//4 + 2.5" promotes the rational to a real before adding. Comparisons and
// the combinators &, |, and ^ produce truth values:
//
//	2 < 3 & 1 < 4
//
// Lines may define functions, which later lines can call:
//
//	fn inc(num) { num + 1 }
//	inc(4)
//
// A function body or if statement may span several lines. When a line ends
// before the construct does, the parser reads more lines from its LineSource.
//
// Package num implements the numeric tower itself.
package calc
