package exprc

import "math"

// Interpreter computes expressions directly in float64. It implements
// Backend[float64]. Bitwise operators round-trip through int32 exactly as
// the compiled module does, so operands beyond int32 range degrade the
// same way in both backends. Shift counts use only their low five bits,
// matching the i32 shift instructions the compiled module executes.
type Interpreter struct{}

var _ Backend[float64] = Interpreter{}

func (Interpreter) Value(x float64) float64 { return x }

func (Interpreter) Operator(op Op, args []float64) (float64, error) {
	switch op {
	case OpPos:
		return args[0], nil
	case OpNeg:
		return -args[0], nil
	case OpNot:
		return float64(^int32(args[0])), nil
	case OpAdd:
		return args[0] + args[1], nil
	case OpSub:
		return args[0] - args[1], nil
	case OpMul:
		return args[0] * args[1], nil
	case OpDiv:
		return args[0] / args[1], nil
	case OpRem:
		return math.Mod(args[0], args[1]), nil
	case OpPow:
		return math.Pow(args[0], args[1]), nil
	case OpAnd:
		return float64(int32(args[0]) & int32(args[1])), nil
	case OpOr:
		return float64(int32(args[0]) | int32(args[1])), nil
	case OpXor:
		return float64(int32(args[0]) ^ int32(args[1])), nil
	case OpShl:
		return float64(int32(args[0]) << (uint32(int32(args[1])) & 31)), nil
	case OpShr:
		return float64(int32(args[0]) >> (uint32(int32(args[1])) & 31)), nil
	}
	panic("exprc: invalid operator " + op.String())
}

func (Interpreter) Function(fn Fn, args []float64) (float64, error) {
	d := fn.desc()
	switch {
	case d.arity == Variadic:
		// an empty reduction is 0
		if len(args) == 0 {
			return 0, nil
		}
		v := args[0]
		for _, x := range args[1:] {
			v = d.f2(v, x)
		}
		return v, nil
	case d.arity == 2:
		return d.f2(args[0], args[1]), nil
	case d.arity == 1:
		return d.f1(args[0]), nil
	}
	panic("exprc: invalid function " + fn.String())
}

// EvalString lexes, parses, and interprets an expression.
func EvalString(src string) (float64, error) {
	toks, err := Lex(src)
	if err != nil {
		return 0, err
	}
	post, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	return Eval[float64](post, Interpreter{})
}
