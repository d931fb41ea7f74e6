// Package exprc compiles one-line math expressions.
//
// An expression is lexed into tokens, reordered to postfix by the
// shunting-yard method, and evaluated over a single stack. Evaluation is
// generic in the value representation: the Interpreter backend computes a
// float64 on the spot, while the Emitter backend runs the same algorithm
// to build an LLVM module whose main function computes and prints the
// identical value.
//
// The language is a calculator's: float64 arithmetic with **, bitwise
// operators that round-trip through int32, the constants pi and e, and a
// catalog of math functions of which hypot, max, and min take any number
// of arguments.
package exprc
