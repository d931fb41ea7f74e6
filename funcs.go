package exprc

import (
	"math"
	"strconv"
)

// Fn identifies a function from the fixed catalog.
type Fn uint8

const (
	FnNone Fn = iota
	FnAbs
	FnAcos
	FnAcosh
	FnAsin
	FnAsinh
	FnAtan
	FnAtan2
	FnAtanh
	FnCbrt
	FnCeil
	FnCos
	FnCosh
	FnExp
	FnFloor
	FnHypot
	FnLog
	FnLog2
	FnLog10
	FnMax
	FnMin
	FnPow
	FnRound
	FnSin
	FnSinh
	FnSqrt
	FnTan
	FnTanh
	FnTrunc
)

// Variadic marks a function accepting any number of arguments, at least
// one. Variadic applications reduce pairwise from the left, so
// hypot(a, b, c) is hypot(hypot(a, b), c).
const Variadic = -1

type fnInfo struct {
	name   string
	arity  int8
	f1     func(float64) float64
	f2     func(float64, float64) float64
	extern string
}

// externName is the libm symbol the code generator declares for the
// function. It differs from the surface name only for abs, max, and min.
func (d fnInfo) externName() string {
	if d.extern != "" {
		return d.extern
	}
	return d.name
}

// fnTab describes the function catalog. The two-argument implementation
// doubles as the reduction step for variadic entries.
var fnTab = [...]fnInfo{
	FnAbs:   {name: "abs", arity: 1, f1: math.Abs, extern: "fabs"},
	FnAcos:  {name: "acos", arity: 1, f1: math.Acos},
	FnAcosh: {name: "acosh", arity: 1, f1: math.Acosh},
	FnAsin:  {name: "asin", arity: 1, f1: math.Asin},
	FnAsinh: {name: "asinh", arity: 1, f1: math.Asinh},
	FnAtan:  {name: "atan", arity: 1, f1: math.Atan},
	FnAtan2: {name: "atan2", arity: 2, f2: math.Atan2},
	FnAtanh: {name: "atanh", arity: 1, f1: math.Atanh},
	FnCbrt:  {name: "cbrt", arity: 1, f1: math.Cbrt},
	FnCeil:  {name: "ceil", arity: 1, f1: math.Ceil},
	FnCos:   {name: "cos", arity: 1, f1: math.Cos},
	FnCosh:  {name: "cosh", arity: 1, f1: math.Cosh},
	FnExp:   {name: "exp", arity: 1, f1: math.Exp},
	FnFloor: {name: "floor", arity: 1, f1: math.Floor},
	FnHypot: {name: "hypot", arity: Variadic, f2: math.Hypot},
	FnLog:   {name: "log", arity: 1, f1: math.Log},
	FnLog2:  {name: "log2", arity: 1, f1: math.Log2},
	FnLog10: {name: "log10", arity: 1, f1: math.Log10},
	FnMax:   {name: "max", arity: Variadic, f2: math.Max, extern: "fmax"},
	FnMin:   {name: "min", arity: Variadic, f2: math.Min, extern: "fmin"},
	FnPow:   {name: "pow", arity: 2, f2: math.Pow},
	FnRound: {name: "round", arity: 1, f1: math.Round},
	FnSin:   {name: "sin", arity: 1, f1: math.Sin},
	FnSinh:  {name: "sinh", arity: 1, f1: math.Sinh},
	FnSqrt:  {name: "sqrt", arity: 1, f1: math.Sqrt},
	FnTan:   {name: "tan", arity: 1, f1: math.Tan},
	FnTanh:  {name: "tanh", arity: 1, f1: math.Tanh},
	FnTrunc: {name: "trunc", arity: 1, f1: math.Trunc},
}

func (fn Fn) desc() fnInfo {
	if int(fn) < len(fnTab) {
		return fnTab[fn]
	}
	return fnInfo{}
}

// String returns the function's surface name.
func (fn Fn) String() string {
	if d := fn.desc(); d.name != "" {
		return d.name
	}
	return "Fn(" + strconv.Itoa(int(fn)) + ")"
}

// Arity returns the declared argument count, or Variadic.
func (fn Fn) Arity() int { return int(fn.desc().arity) }

// fnNames maps lowercased surface names to functions for the lexer.
var fnNames = make(map[string]Fn, len(fnTab))

func init() {
	for i, d := range fnTab {
		if d.name != "" {
			fnNames[d.name] = Fn(i)
		}
	}
}

// constants are the named values the lexer recognizes. Like function
// names, they match case-insensitively.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}
