package exprc

import (
	"fmt"
	"os"

	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Emitter builds an LLVM module computing one expression. It implements
// Backend[value.Value]: evaluating postfix through it appends instructions
// to the module's main function instead of computing numbers. Each Emitter
// owns its module; nothing is shared between compilations.
type Emitter struct {
	mod     *ir.Module
	main    *ir.Func
	block   *ir.Block
	externs map[Fn]*ir.Func
	printf  *ir.Func
	format  string
	strs    int
}

var _ Backend[value.Value] = (*Emitter)(nil)

// EmitterOption is an option used when creating an Emitter.
type EmitterOption interface {
	emitterOption()
}

type (
	nameopt   string
	formatopt string
)

func (nameopt) emitterOption()   {}
func (formatopt) emitterOption() {}

// SourceName sets the module's source filename. The default is main.ll.
func SourceName(name string) EmitterOption { return nameopt(name) }

// ResultFormat sets the printf format main prints the result with. The
// default is "Result: %.3lf\n".
func ResultFormat(format string) EmitterOption { return formatopt(format) }

// NewEmitter creates an Emitter with an empty main function.
func NewEmitter(opts ...EmitterOption) *Emitter {
	m := ir.NewModule()
	m.SourceFilename = "main.ll"
	f := m.NewFunc("main", types.I32)
	e := &Emitter{
		mod:     m,
		main:    f,
		block:   f.NewBlock("entry"),
		externs: make(map[Fn]*ir.Func),
		format:  "Result: %.3lf\n",
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case nameopt:
			m.SourceFilename = string(opt)
		case formatopt:
			e.format = string(opt)
		default:
			panic("exprc: unknown option type")
		}
	}
	return e
}

func (e *Emitter) Value(x float64) value.Value {
	return constant.NewFloat(types.Double, x)
}

func (e *Emitter) Operator(op Op, args []value.Value) (value.Value, error) {
	switch op {
	case OpPos:
		return args[0], nil
	case OpNeg:
		return e.block.NewFNeg(args[0]), nil
	case OpNot:
		v := e.block.NewXor(e.toInt(args[0]), constant.NewInt(types.I32, -1))
		return e.toFloat(v), nil
	case OpAdd:
		return e.block.NewFAdd(args[0], args[1]), nil
	case OpSub:
		return e.block.NewFSub(args[0], args[1]), nil
	case OpMul:
		return e.block.NewFMul(args[0], args[1]), nil
	case OpDiv:
		return e.block.NewFDiv(args[0], args[1]), nil
	case OpRem:
		return e.block.NewFRem(args[0], args[1]), nil
	case OpPow:
		return e.block.NewCall(e.extern(FnPow), args...), nil
	case OpAnd:
		return e.toFloat(e.block.NewAnd(e.toInt(args[0]), e.toInt(args[1]))), nil
	case OpOr:
		return e.toFloat(e.block.NewOr(e.toInt(args[0]), e.toInt(args[1]))), nil
	case OpXor:
		return e.toFloat(e.block.NewXor(e.toInt(args[0]), e.toInt(args[1]))), nil
	case OpShl:
		return e.toFloat(e.block.NewShl(e.toInt(args[0]), e.shiftCount(args[1]))), nil
	case OpShr:
		// arithmetic shift, matching the interpreter's int32 shift
		return e.toFloat(e.block.NewAShr(e.toInt(args[0]), e.shiftCount(args[1]))), nil
	}
	panic("exprc: invalid operator " + op.String())
}

func (e *Emitter) Function(fn Fn, args []value.Value) (value.Value, error) {
	if fn.Arity() == Variadic {
		// an empty reduction is a constant 0; a single value passes
		// through. Neither declares the extern.
		if len(args) == 0 {
			return constant.NewFloat(types.Double, 0), nil
		}
		v := args[0]
		for _, x := range args[1:] {
			v = e.block.NewCall(e.extern(fn), v, x)
		}
		return v, nil
	}
	return e.block.NewCall(e.extern(fn), args...), nil
}

// toInt and toFloat are the int32 round-trip bitwise operands take, the
// precision boundary both backends share.
func (e *Emitter) toInt(v value.Value) value.Value {
	return e.block.NewFPToSI(v, types.I32)
}

func (e *Emitter) toFloat(v value.Value) value.Value {
	return e.block.NewSIToFP(v, types.Double)
}

// shiftCount converts a shift count to i32 masked to its low five bits.
// An i32 shift by 32 or more is poison, and the interpreter applies the
// same mask.
func (e *Emitter) shiftCount(v value.Value) value.Value {
	return e.block.NewAnd(e.toInt(v), constant.NewInt(types.I32, 31))
}

// extern returns the declaration for a math function, creating it on first
// use so each symbol is declared at most once per module. Declarations
// take and return double; variadic functions declare two parameters and
// are applied pairwise.
func (e *Emitter) extern(fn Fn) *ir.Func {
	if f, ok := e.externs[fn]; ok {
		return f
	}
	n := fn.Arity()
	if n == Variadic {
		n = 2
	}
	params := make([]*ir.Param, n)
	for i := range params {
		params[i] = ir.NewParam("", types.Double)
	}
	f := e.mod.NewFunc(fn.desc().externName(), types.Double, params...)
	e.externs[fn] = f
	return f
}

func (e *Emitter) printfFn() *ir.Func {
	if e.printf == nil {
		p := e.mod.NewFunc("printf", types.I32, ir.NewParam("", types.NewPointer(types.I8)))
		p.Sig.Variadic = true
		e.printf = p
	}
	return e.printf
}

// globalString interns a NUL-terminated string constant and returns an
// i8* to its head.
func (e *Emitter) globalString(s string) value.Value {
	arr := constant.NewCharArrayFromString(s + "\x00")
	name := ".str"
	if e.strs > 0 {
		name = fmt.Sprintf(".str.%d", e.strs)
	}
	e.strs++
	g := e.mod.NewGlobal(name, arr.Typ)
	g.Init = arr
	zero := constant.NewInt(types.I64, 0)
	return constant.NewGetElementPtr(arr.Typ, g, zero, zero)
}

// Finish prints the result and returns 0 from main. Call it exactly once,
// after evaluating the whole expression through the Emitter.
func (e *Emitter) Finish(result value.Value) {
	e.block.NewCall(e.printfFn(), e.globalString(e.format), result)
	e.block.NewRet(constant.NewInt(types.I32, 0))
}

// Module returns the module under construction.
func (e *Emitter) Module() *ir.Module {
	return e.mod
}

// Compile evaluates a postfix sequence into the Emitter's module and
// finishes it.
func (e *Emitter) Compile(post Tokens) error {
	v, err := Eval[value.Value](post, e)
	if err != nil {
		return err
	}
	e.Finish(v)
	return nil
}

// WriteFile verifies the module and writes its textual IR to path.
// Verification reparses the serialized form, catching structural mistakes
// before anything lands on disk.
func (e *Emitter) WriteFile(path string) error {
	s := e.mod.String()
	if _, err := asm.ParseString(path, s); err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	return os.WriteFile(path, []byte(s), 0o644)
}

// Compile builds a finished module computing a postfix sequence.
func Compile(post Tokens, opts ...EmitterOption) (*ir.Module, error) {
	e := NewEmitter(opts...)
	if err := e.Compile(post); err != nil {
		return nil, err
	}
	return e.mod, nil
}

// CompileString lexes, parses, and compiles an expression.
func CompileString(src string, opts ...EmitterOption) (*ir.Module, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	post, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return Compile(post, opts...)
}
