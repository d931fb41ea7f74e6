package exprc

import "strconv"

// BracketError is an error indicating unbalanced parentheses. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left and Right are the unmatched open or close parenthesis; exactly
	// one is set.
	Left, Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside any function call.
// It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, `separator "," outside function call`)
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// UnterminatedCallError is an error indicating input that ended inside a
// function call. It implements InputError.
type UnterminatedCallError struct {
	// Col is the position of the function whose call never closed.
	Col int
	// Func is the function name.
	Func string
}

func (err *UnterminatedCallError) Error() string {
	return errpos(err.Col, "call to "+err.Func+" is never closed")
}

func (err *UnterminatedCallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating input that produced no value
// at all.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error blaming a
// particular place in the input implements InputError.
type InputError interface {
	error
	// Pos returns the 0-based byte offset of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*UnterminatedCallError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*OperandError)(nil)
)
