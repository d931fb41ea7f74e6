package exprc

import (
	"strconv"
	"strings"
)

// Kind classifies a Token.
type Kind uint8

const (
	// KindNone is the zero Kind. No token produced by Lex or Parse has it.
	KindNone Kind = iota
	// KindNum is a numeric value, scanned from the source or synthesized
	// by the parser as a call's argument count.
	KindNum
	// KindOp is an operator, including the grouping and call markers.
	KindOp
	// KindFn is a function name.
	KindFn
)

// Token is one element of an expression in infix or postfix order. Exactly
// one of Num, Op, and Fn is meaningful, selected by Kind.
type Token struct {
	Kind Kind
	// Num is the value of a KindNum token.
	Num float64
	// Op is the operator of a KindOp token.
	Op Op
	// Fn is the function of a KindFn token.
	Fn Fn
	// Argc is the argument count of a KindFn token in postfix. The parser
	// freezes it when the call's closing parenthesis is consumed.
	Argc int
	// Pos is the byte offset of the token in the source line, or -1 for
	// tokens the parser synthesized.
	Pos int
}

// String renders the token as surface syntax. Numbers print with three
// decimals, the same precision the compiled module prints with.
func (t Token) String() string {
	switch t.Kind {
	case KindNum:
		return strconv.FormatFloat(t.Num, 'f', 3, 64)
	case KindOp:
		return t.Op.String()
	case KindFn:
		return t.Fn.String()
	}
	return "?"
}

// Tokens is an ordered token sequence: infix as lexed, postfix as parsed.
type Tokens []Token

// String renders the sequence space-separated. For a lexed sequence of
// finite values, re-lexing the rendered form yields a sequence that renders
// identically.
func (ts Tokens) String() string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Op identifies an operator.
type Op uint8

const (
	OpNone Op = iota
	// OpSep is the argument separator. The parser consumes it; it never
	// reaches postfix.
	OpSep
	OpAnd
	OpOr
	OpXor
	OpShr
	OpShl
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpPow
	// OpNot, OpPos, and OpNeg are unary. The lexer emits OpAdd and OpSub
	// for + and -; the parser reclassifies them to OpPos and OpNeg where
	// no left operand can exist.
	OpNot
	OpPos
	OpNeg
	// OpOpen and OpCall are the parser's stack sentinels: a plain group
	// and a function call opening. OpClose is consumed by the parser.
	OpOpen
	OpClose
	OpCall
)

type opInfo struct {
	text     string
	prec     int8
	arity    int8
	sentinel bool
}

// opTab describes every operator. Sentinels carry the lowest precedence so
// nothing pops past them; the separator sits just above and flushes every
// pending operator when it is processed.
var opTab = [...]opInfo{
	OpSep:   {text: ",", prec: 1, arity: 2},
	OpAnd:   {text: "&", prec: 2, arity: 2},
	OpOr:    {text: "|", prec: 2, arity: 2},
	OpXor:   {text: "^", prec: 2, arity: 2},
	OpShr:   {text: ">>", prec: 3, arity: 2},
	OpShl:   {text: "<<", prec: 3, arity: 2},
	OpAdd:   {text: "+", prec: 4, arity: 2},
	OpSub:   {text: "-", prec: 4, arity: 2},
	OpMul:   {text: "*", prec: 5, arity: 2},
	OpDiv:   {text: "/", prec: 5, arity: 2},
	OpRem:   {text: "%", prec: 5, arity: 2},
	OpPow:   {text: "**", prec: 6, arity: 2},
	OpNot:   {text: "~", prec: 7, arity: 1},
	OpPos:   {text: "+", prec: 7, arity: 1},
	OpNeg:   {text: "-", prec: 7, arity: 1},
	OpOpen:  {text: "(", sentinel: true},
	OpClose: {text: ")"},
	OpCall:  {text: "(", sentinel: true},
}

func (op Op) desc() opInfo {
	if int(op) < len(opTab) {
		return opTab[op]
	}
	return opInfo{}
}

// String returns the operator's surface text. OpPos and OpNeg render as +
// and -, and OpCall as (, so rendered sequences re-lex.
func (op Op) String() string {
	if d := op.desc(); d.text != "" {
		return d.text
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Prec returns the operator's precedence. Higher binds tighter. All binary
// operators are left-associative: equal precedence pops.
func (op Op) Prec() int { return int(op.desc().prec) }

// Arity returns the number of operands the operator consumes.
func (op Op) Arity() int { return int(op.desc().arity) }

// Unary reports whether the operator is unary. Unary operators pop nothing
// when pushed, so they bind tighter than any pending binary operator.
func (op Op) Unary() bool { return op.desc().arity == 1 }

// Sentinel reports whether the operator bounds popping runs on the
// operator stack.
func (op Op) Sentinel() bool { return op.desc().sentinel }
