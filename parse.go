package exprc

// call tracks one open function call while parsing. count is the working
// argument counter owned by this entry alone; close freezes it into the
// emitted function token.
type call struct {
	fn    Fn
	count int
	pos   int
}

// yard is the shunting-yard state: postfix output, pending operator stack,
// and the stack of open calls.
type yard struct {
	post  Tokens
	ops   []Token
	calls []call
}

// Parse converts infix tokens to postfix. Parentheses and separators are
// consumed; a function call becomes the function token followed by a
// synthesized argument-count value, in that order, after its arguments.
func Parse(infix Tokens) (Tokens, error) {
	var y yard
	var prev Token
	for _, tok := range infix {
		tok = reclassify(tok, prev)
		if err := y.take(tok); err != nil {
			return nil, err
		}
		prev = tok
	}
	if err := y.drain(); err != nil {
		return nil, err
	}
	return y.post, nil
}

// reclassify resolves the context-sensitive tokens against the previous
// reclassified token: + and - are unary unless an operand just ended, and
// ( opens a call when it follows a function name. Adjacent signs stay
// separate tokens; each applies in turn.
func reclassify(tok, prev Token) Token {
	if tok.Kind != KindOp {
		return tok
	}
	switch tok.Op {
	case OpAdd, OpSub:
		if prev.Kind == KindNum || prev.Kind == KindOp && prev.Op == OpClose {
			break
		}
		if tok.Op == OpAdd {
			tok.Op = OpPos
		} else {
			tok.Op = OpNeg
		}
	case OpOpen:
		if prev.Kind == KindFn {
			tok.Op = OpCall
		}
	}
	return tok
}

// take processes one reclassified token.
func (y *yard) take(tok Token) error {
	switch tok.Kind {
	case KindNum:
		y.post = append(y.post, tok)
		y.seen()
		return nil
	case KindFn:
		y.seen()
		y.calls = append(y.calls, call{fn: tok.Fn, pos: tok.Pos})
		return nil
	case KindOp:
		switch {
		case tok.Op.Sentinel():
			y.ops = append(y.ops, tok)
			return nil
		case tok.Op == OpClose:
			return y.close(tok)
		case tok.Op == OpSep:
			return y.sep(tok)
		default:
			if !tok.Op.Unary() {
				y.popPending(tok.Op)
			}
			y.ops = append(y.ops, tok)
			return nil
		}
	}
	panic("exprc: invalid token kind in infix")
}

// seen marks the innermost open call as having an argument. Values and
// function names inside a call flip its count from zero to one; separators
// do the counting from there.
func (y *yard) seen() {
	if len(y.calls) > 0 && y.calls[len(y.calls)-1].count == 0 {
		y.calls[len(y.calls)-1].count = 1
	}
}

// popPending moves pending operators to postfix while the top of the stack
// binds at least as tightly. Sentinels stop the run.
func (y *yard) popPending(op Op) {
	for len(y.ops) > 0 {
		top := y.ops[len(y.ops)-1]
		if top.Op.Sentinel() || op.Prec() > top.Op.Prec() {
			return
		}
		y.post = append(y.post, top)
		y.ops = y.ops[:len(y.ops)-1]
	}
}

// sep handles an argument separator: flush pending operators, then count
// the argument on the innermost call.
func (y *yard) sep(tok Token) error {
	y.popPending(OpSep)
	if len(y.calls) == 0 {
		return &SeparatorError{Col: tok.Pos}
	}
	y.calls[len(y.calls)-1].count++
	return nil
}

// close pops to the matching sentinel. A plain group's sentinel just
// disappears; a call sentinel finalizes the call, emitting the function
// token with its frozen count and then the count as a value.
func (y *yard) close(tok Token) error {
	for len(y.ops) > 0 {
		top := y.ops[len(y.ops)-1]
		y.ops = y.ops[:len(y.ops)-1]
		switch top.Op {
		case OpOpen:
			return nil
		case OpCall:
			y.endCall()
			return nil
		}
		y.post = append(y.post, top)
	}
	return &BracketError{Col: tok.Pos, Right: ")"}
}

func (y *yard) endCall() {
	if len(y.calls) == 0 {
		panic("exprc: call marker without open call")
	}
	c := y.calls[len(y.calls)-1]
	y.calls = y.calls[:len(y.calls)-1]
	y.post = append(y.post,
		Token{Kind: KindFn, Fn: c.fn, Argc: c.count, Pos: c.pos},
		Token{Kind: KindNum, Num: float64(c.count), Pos: -1})
}

// drain empties the operator stack at end of input. A leftover group
// sentinel is a bracket error; a leftover call sentinel, or any still-open
// call, is an unterminated call.
func (y *yard) drain() error {
	for len(y.ops) > 0 {
		top := y.ops[len(y.ops)-1]
		y.ops = y.ops[:len(y.ops)-1]
		switch top.Op {
		case OpOpen:
			return &BracketError{Col: top.Pos, Left: "("}
		case OpCall:
			return y.unterminated()
		}
		y.post = append(y.post, top)
	}
	if len(y.calls) > 0 {
		return y.unterminated()
	}
	return nil
}

func (y *yard) unterminated() error {
	if len(y.calls) == 0 {
		panic("exprc: call marker without open call")
	}
	c := y.calls[len(y.calls)-1]
	return &UnterminatedCallError{Col: c.pos, Func: c.fn.String()}
}
