package symexpr

import "strconv"

// LexError is an error indicating a character or number literal the scanner
// could not accept. It implements InputError.
type LexError struct {
	// Text is the offending input text.
	Text string
	// Kind is "character" or "number".
	Kind string
	// Col is the position of the text.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "number" {
		return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not
// understood. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket: the unmatched close
	// bracket, or the open bracket that is never closed.
	Col int
	// Left is the unclosed opening bracket, if any.
	Left string
	// Right is the unmatched closing bracket, if any.
	Right string
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

// SeparatorError is an error indicating an argument separator outside a
// function call. An empty argument inside a call is not detected here; it
// surfaces as an UnderflowError or UnbalancedError. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// UnknownFuncError is an error indicating a call to a name that is not a
// known function. It implements InputError.
type UnknownFuncError struct {
	// Col is the position of the call.
	Col int
	// Func is the name that was called.
	Func string
}

func (err *UnknownFuncError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Func))
}

func (err *UnknownFuncError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the call.
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

// UnderflowError is an error indicating an operator with too few operands,
// such as a trailing "+". It implements InputError.
type UnderflowError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
}

func (err *UnderflowError) Error() string {
	return errpos(err.Col, "missing operand for operator "+strconv.Quote(err.Op))
}

func (err *UnderflowError) Pos() int {
	return err.Col
}

// UnbalancedError is an error indicating that the input held more than one
// expression, such as "1 2". It implements InputError.
type UnbalancedError struct {
	// Col is the position of the last token in postfix order.
	Col int
	// Len is the number of expression values left over.
	Len int
}

func (err *UnbalancedError) Error() string {
	return errpos(err.Col, "unbalanced expression: "+strconv.Itoa(err.Len)+" values remain")
}

func (err *UnbalancedError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty input.
type EmptyExpressionError struct {
	// Col is the position at which an expression was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*UnknownFuncError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*UnderflowError)(nil)
	_ InputError = (*UnbalancedError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
