package symexpr

import "strconv"

// DivisionError is an error indicating exact division by zero.
type DivisionError struct{}

func (err *DivisionError) Error() string {
	return "division by zero"
}

// FactorialError is an error indicating a factorial of a negative or
// non-integer value.
type FactorialError struct {
	// X is the offending operand.
	X *Expr
}

func (err *FactorialError) Error() string {
	return "factorial of " + err.X.String() + " is undefined"
}

// BoundsError is an error indicating a sum bound that did not evaluate to
// an integer.
type BoundsError struct {
	// Bound is the evaluated bound.
	Bound *Expr
}

func (err *BoundsError) Error() string {
	return "sum bound " + err.Bound.String() + " is not an integer"
}

// ArgumentError is an error indicating a call argument of the wrong form,
// such as a sum or diff variable that is not a name.
type ArgumentError struct {
	// Func is the function that was called.
	Func string
	// Arg is the 1-based position of the bad argument.
	Arg int
	// Want describes the expected form.
	Want string
}

func (err *ArgumentError) Error() string {
	return "argument " + strconv.Itoa(err.Arg) + " of " + err.Func + " must be a " + err.Want
}

// DiffError is an error indicating an expression with no differentiation
// rule.
type DiffError struct {
	// Expr is the subexpression that could not be differentiated.
	Expr *Expr
}

func (err *DiffError) Error() string {
	return "cannot differentiate " + err.Expr.String()
}
