package exprc

import (
	"math"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src  string
		want Tokens
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", Tokens{{Kind: KindNum, Num: 0, Pos: 0}}},
		{"9876543210", Tokens{{Kind: KindNum, Num: 9876543210, Pos: 0}}},
		{"1 0", Tokens{{Kind: KindNum, Num: 1, Pos: 0}, {Kind: KindNum, Num: 0, Pos: 2}}},
		{"1.5", Tokens{{Kind: KindNum, Num: 1.5, Pos: 0}}},
		{"5.", Tokens{{Kind: KindNum, Num: 5, Pos: 0}}},
		{".5", Tokens{{Kind: KindNum, Num: 0.5, Pos: 0}}},
		{"1e3", Tokens{{Kind: KindNum, Num: 1000, Pos: 0}}},
		{"1e+3", Tokens{{Kind: KindNum, Num: 1000, Pos: 0}}},
		{"1.01e-1", Tokens{{Kind: KindNum, Num: 0.101, Pos: 0}}},
		{"1E3", Tokens{{Kind: KindNum, Num: 1000, Pos: 0}}},
		// the exponent marker stays unconsumed without a digit after it
		{"1e", Tokens{{Kind: KindNum, Num: 1, Pos: 0}, {Kind: KindNum, Num: math.E, Pos: 1}}},
		{"1e+", Tokens{{Kind: KindNum, Num: 1, Pos: 0}, {Kind: KindNum, Num: math.E, Pos: 1}, {Kind: KindOp, Op: OpAdd, Pos: 2}}},
		{"1.1.1", Tokens{{Kind: KindNum, Num: 1.1, Pos: 0}, {Kind: KindNum, Num: 0.1, Pos: 3}}},
		// out-of-range literals saturate
		{"1e999", Tokens{{Kind: KindNum, Num: math.Inf(1), Pos: 0}}},
		// constants
		{"pi", Tokens{{Kind: KindNum, Num: math.Pi, Pos: 0}}},
		{"PI", Tokens{{Kind: KindNum, Num: math.Pi, Pos: 0}}},
		{"e", Tokens{{Kind: KindNum, Num: math.E, Pos: 0}}},
		{"E", Tokens{{Kind: KindNum, Num: math.E, Pos: 0}}},
		{"pi e", Tokens{{Kind: KindNum, Num: math.Pi, Pos: 0}, {Kind: KindNum, Num: math.E, Pos: 3}}},
		// functions resolve only with a parenthesis ahead
		{"sin(", Tokens{{Kind: KindFn, Fn: FnSin, Pos: 0}, {Kind: KindOp, Op: OpOpen, Pos: 3}}},
		{"sin (", Tokens{{Kind: KindFn, Fn: FnSin, Pos: 0}, {Kind: KindOp, Op: OpOpen, Pos: 4}}},
		{"SIN(", Tokens{{Kind: KindFn, Fn: FnSin, Pos: 0}, {Kind: KindOp, Op: OpOpen, Pos: 3}}},
		{"atan2(", Tokens{{Kind: KindFn, Fn: FnAtan2, Pos: 0}, {Kind: KindOp, Op: OpOpen, Pos: 5}}},
		{"max(1)", Tokens{
			{Kind: KindFn, Fn: FnMax, Pos: 0},
			{Kind: KindOp, Op: OpOpen, Pos: 3},
			{Kind: KindNum, Num: 1, Pos: 4},
			{Kind: KindOp, Op: OpClose, Pos: 5},
		}},
		// operators
		{"+", Tokens{{Kind: KindOp, Op: OpAdd, Pos: 0}}},
		{"-", Tokens{{Kind: KindOp, Op: OpSub, Pos: 0}}},
		{"-1", Tokens{{Kind: KindOp, Op: OpSub, Pos: 0}, {Kind: KindNum, Num: 1, Pos: 1}}},
		{"--", Tokens{{Kind: KindOp, Op: OpSub, Pos: 0}, {Kind: KindOp, Op: OpSub, Pos: 1}}},
		{"**", Tokens{{Kind: KindOp, Op: OpPow, Pos: 0}}},
		{"***", Tokens{{Kind: KindOp, Op: OpPow, Pos: 0}, {Kind: KindOp, Op: OpMul, Pos: 2}}},
		{"<<", Tokens{{Kind: KindOp, Op: OpShl, Pos: 0}}},
		{">>", Tokens{{Kind: KindOp, Op: OpShr, Pos: 0}}},
		{"&|^~%/", Tokens{
			{Kind: KindOp, Op: OpAnd, Pos: 0},
			{Kind: KindOp, Op: OpOr, Pos: 1},
			{Kind: KindOp, Op: OpXor, Pos: 2},
			{Kind: KindOp, Op: OpNot, Pos: 3},
			{Kind: KindOp, Op: OpRem, Pos: 4},
			{Kind: KindOp, Op: OpDiv, Pos: 5},
		}},
		{"1+2", Tokens{{Kind: KindNum, Num: 1, Pos: 0}, {Kind: KindOp, Op: OpAdd, Pos: 1}, {Kind: KindNum, Num: 2, Pos: 2}}},
		// brackets and separators
		{"()", Tokens{{Kind: KindOp, Op: OpOpen, Pos: 0}, {Kind: KindOp, Op: OpClose, Pos: 1}}},
		{",", Tokens{{Kind: KindOp, Op: OpSep, Pos: 0}}},
	}

	for _, c := range cases {
		got, err := Lex(c.src)
		if c.want == nil {
			if err != nil || got != nil {
				t.Errorf("scanning %q: want no tokens, got %v with error %v", c.src, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(got) != len(c.want) {
			t.Errorf("scanning %q: want %d tokens %v, got %d tokens %v", c.src, len(c.want), c.want, len(got), got)
			continue
		}
		for i, want := range c.want {
			if got[i] != want {
				t.Errorf("scanning %q: token %d: want %+v, got %+v", c.src, i, want, got[i])
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		col  int
		char rune
	}{
		{"$", 0, '$'},
		{"1 $", 2, '$'},
		{"$ 1", 0, '$'},
		{".", 0, '.'},
		{"1..", 2, '.'},
		{"1 + ?", 4, '?'},
		{"1 + π", 4, 'π'},
		{"=", 0, '='},
		{"<", 0, '<'},
		{">", 0, '>'},
		{"1 < 2", 2, '<'},
		{"<<<", 2, '<'},
		// names that are neither constants nor called functions
		{"x", 0, 'x'},
		{"sin", 0, 's'},
		{"sin + 1", 0, 's'},
		{"max 1", 0, 'm'},
		{"sine(", 0, 's'},
		{"2**exp(-$)", 8, '$'},
	}

	for _, c := range cases {
		toks, err := Lex(c.src)
		if toks != nil {
			t.Errorf("scanning %q: got tokens %v alongside error", c.src, toks)
		}
		lerr, ok := err.(*LexError)
		if !ok {
			t.Errorf("scanning %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if lerr.Col != c.col {
			t.Errorf("scanning %q: error at offset %d, want %d", c.src, lerr.Col, c.col)
		}
		if lerr.Char != c.char {
			t.Errorf("scanning %q: error blames %q, want %q", c.src, lerr.Char, c.char)
		}
		if lerr.Pos() != lerr.Col {
			t.Errorf("scanning %q: Pos gives %d, Col gives %d", c.src, lerr.Pos(), lerr.Col)
		}
	}
}

func TestLexRender(t *testing.T) {
	// Rendering lexed tokens gives a form that lexes again to the same
	// rendering, even where the first render rounds values.
	cases := []string{
		"1 + 2 * 3",
		"1+2*3",
		"max( 1,2 , 3)",
		"sin (0.5) ** 2",
		"-hypot(1, -2, 3)",
		"((((1))))",
		"2 ** -3",
		"0.0001 + 12345.6789",
		"1 << 5 >> 2 & 7 | 8 ^ 3",
		"~pi % e",
	}
	for _, src := range cases {
		toks, err := Lex(src)
		if err != nil {
			t.Fatalf("failed to scan %q: %v", src, err)
		}
		r := toks.String()
		again, err := Lex(r)
		if err != nil {
			t.Errorf("%q rendered as %q, which does not lex: %v", src, r, err)
			continue
		}
		if got := again.String(); got != r {
			t.Errorf("unstable render of %q: %q, then %q", src, r, got)
		}
	}
}
