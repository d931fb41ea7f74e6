package exprc

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// lexer scans one source line by byte offset.
type lexer struct {
	src string
	i   int
}

// Lex scans an expression line into infix tokens. + and - always lex as
// their binary operators; the parser decides where they are unary. Scanning
// aborts at the first invalid character with a LexError naming its byte
// offset.
func Lex(src string) (Tokens, error) {
	l := lexer{src: src}
	var toks Tokens
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindNone {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next scans the next token. At the end of the line it returns the zero
// Token.
func (l *lexer) next() (Token, error) {
	for l.i < len(l.src) && isSpace(l.src[l.i]) {
		l.i++
	}
	if l.i >= len(l.src) {
		return Token{}, nil
	}
	pos := l.i
	switch c := l.src[l.i]; {
	case '0' <= c && c <= '9', c == '.':
		return l.scanNum(pos)
	case isAlpha(c):
		return l.scanIdent(pos)
	}
	if op := l.scanOp(); op != OpNone {
		return Token{Kind: KindOp, Op: op, Pos: pos}, nil
	}
	return Token{}, l.errorAt(pos)
}

// scanNum scans an integer, decimal, or scientific-notation literal. The
// exponent marker is consumed only when an optionally signed digit follows,
// so "1e" lexes as 1 and then the constant e.
func (l *lexer) scanNum(pos int) (Token, error) {
	whole := l.digits()
	frac := false
	if l.i < len(l.src) && l.src[l.i] == '.' {
		l.i++
		frac = l.digits()
	}
	if !whole && !frac {
		// a lone dot starts nothing
		return Token{}, l.errorAt(pos)
	}
	if l.i < len(l.src) && (l.src[l.i] == 'e' || l.src[l.i] == 'E') {
		j := l.i + 1
		if j < len(l.src) && (l.src[j] == '+' || l.src[j] == '-') {
			j++
		}
		if j < len(l.src) && isDigit(l.src[j]) {
			l.i = j
			l.digits()
		}
	}
	v, err := strconv.ParseFloat(l.src[pos:l.i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, l.errorAt(pos)
	}
	return Token{Kind: KindNum, Num: v, Pos: pos}, nil
}

func (l *lexer) digits() bool {
	n := l.i
	for l.i < len(l.src) && isDigit(l.src[l.i]) {
		l.i++
	}
	return l.i > n
}

// scanIdent scans a name and resolves it case-insensitively: a function
// name when a parenthesis follows, else a constant. Anything else is
// invalid at the name's first character.
func (l *lexer) scanIdent(pos int) (Token, error) {
	for l.i < len(l.src) && (isAlpha(l.src[l.i]) || isDigit(l.src[l.i])) {
		l.i++
	}
	name := strings.ToLower(l.src[pos:l.i])
	if fn, ok := fnNames[name]; ok && l.callAhead() {
		return Token{Kind: KindFn, Fn: fn, Pos: pos}, nil
	}
	if v, ok := constants[name]; ok {
		return Token{Kind: KindNum, Num: v, Pos: pos}, nil
	}
	return Token{}, l.errorAt(pos)
}

// callAhead reports whether the next non-space byte opens a call. Nothing
// is consumed; the parenthesis lexes as its own token.
func (l *lexer) callAhead() bool {
	for j := l.i; j < len(l.src); j++ {
		if isSpace(l.src[j]) {
			continue
		}
		return l.src[j] == '('
	}
	return false
}

// scanOp scans an operator. Two-byte operators take priority over their
// one-byte prefixes.
func (l *lexer) scanOp() Op {
	rest := l.src[l.i:]
	switch {
	case strings.HasPrefix(rest, "**"):
		l.i += 2
		return OpPow
	case strings.HasPrefix(rest, "<<"):
		l.i += 2
		return OpShl
	case strings.HasPrefix(rest, ">>"):
		l.i += 2
		return OpShr
	}
	var op Op
	switch rest[0] {
	case '(':
		op = OpOpen
	case ')':
		op = OpClose
	case ',':
		op = OpSep
	case '&':
		op = OpAnd
	case '|':
		op = OpOr
	case '^':
		op = OpXor
	case '+':
		op = OpAdd
	case '-':
		op = OpSub
	case '*':
		op = OpMul
	case '/':
		op = OpDiv
	case '%':
		op = OpRem
	case '~':
		op = OpNot
	default:
		return OpNone
	}
	l.i++
	return op
}

func (l *lexer) errorAt(pos int) error {
	r, _ := utf8.DecodeRuneInString(l.src[pos:])
	return &LexError{Char: r, Col: pos}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// LexError indicates a character that cannot begin any token. It
// implements InputError.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the 0-based byte offset of Char in the source line.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
