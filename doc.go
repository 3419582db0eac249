// Package symexpr implements a symbolic arithmetic calculator.
//
// Expressions are ordinary infix arithmetic: "3 + 4*5", "(1+2)^3", "5!",
// "sin(pi/2)". Arithmetic on integers and ratios is exact; a result becomes
// floating-point only when a float appears in the input or an operation
// requires it, so "2/4 + 1/4" is 3/4 but "2/4." is 0.5.
//
// Names without definitions are not errors. They stay in the result as
// symbols, so "x*1 + 0" evaluates to x. Variables can be bound with SetVar
// to parse an expression once and evaluate it for many inputs.
//
package symexpr
