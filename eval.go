package exprc

import "strconv"

// Backend supplies the primitive steps of postfix evaluation for one value
// representation. The same control algorithm drives every Backend, so
// interpreting an expression and compiling it differ only in T. Arguments
// are passed in source order; implementations must not retain the args
// slice past the call.
type Backend[T any] interface {
	// Value materializes a numeric literal.
	Value(x float64) T
	// Operator applies an operator to its operands.
	Operator(op Op, args []T) (T, error)
	// Function applies a function to its arguments.
	Function(fn Fn, args []T) (T, error)
}

// Eval evaluates a postfix sequence against a backend with a single value
// stack. A function token consumes the argument-count value following it.
// Exactly one value must remain at the end. Eval panics on postfix
// malformed in ways Parse cannot produce, such as a function token without
// its count.
func Eval[T any](post Tokens, b Backend[T]) (T, error) {
	var zero T
	var stack []T
	for i := 0; i < len(post); i++ {
		tok := post[i]
		switch tok.Kind {
		case KindNum:
			stack = append(stack, b.Value(tok.Num))
		case KindOp:
			n := tok.Op.Arity()
			if len(stack) < n {
				return zero, &OperandError{Col: tok.Pos, Tok: tok.String(), Want: n, Have: len(stack)}
			}
			v, err := b.Operator(tok.Op, stack[len(stack)-n:])
			if err != nil {
				return zero, err
			}
			stack = append(stack[:len(stack)-n], v)
		case KindFn:
			if i+1 >= len(post) || post[i+1].Kind != KindNum {
				panic("exprc: function token without argument count")
			}
			i++
			n := int(post[i].Num)
			if a := tok.Fn.Arity(); n < 1 || a != Variadic && n != a {
				return zero, &CallError{Col: tok.Pos, Func: tok.Fn.String(), Len: n}
			}
			if len(stack) < n {
				return zero, &OperandError{Col: tok.Pos, Tok: tok.String(), Want: n, Have: len(stack)}
			}
			v, err := b.Function(tok.Fn, stack[len(stack)-n:])
			if err != nil {
				return zero, err
			}
			stack = append(stack[:len(stack)-n], v)
		default:
			panic("exprc: invalid token kind in postfix")
		}
	}
	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return zero, &EmptyExpressionError{}
	default:
		return zero, &ResidualError{N: len(stack)}
	}
}

// CallError is an error indicating a function call with an argument count
// its arity does not allow, including empty calls. It implements
// InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator or function with fewer
// operands on the stack than it consumes. It implements InputError.
type OperandError struct {
	// Col is the position of the token that failed.
	Col int
	// Tok is the rendered token.
	Tok string
	// Want and Have are the required and available operand counts.
	Want, Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough operands for "+err.Tok+": want "+strconv.Itoa(err.Want)+", have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ResidualError is an error indicating evaluation that ended with more
// than one value on the stack, from operands no operator consumed.
type ResidualError struct {
	// N is the number of values left.
	N int
}

func (err *ResidualError) Error() string {
	return strconv.Itoa(err.N) + " values left after evaluation"
}
