package symexpr

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by an Expr.
type Kind int8

const (
	KindInvalid Kind = iota
	// KindInteger is an exact 64-bit integer.
	KindInteger
	// KindFloat is an IEEE-754 double.
	KindFloat
	// KindRatio is an exact rational with positive denominator in lowest
	// terms.
	KindRatio
	// KindVariable is a free or bound name.
	KindVariable
	// KindUnary is a unary operator applied to one operand.
	KindUnary
	// KindBinary is a binary operator applied to two operands.
	KindBinary
	// KindCall is a function call.
	KindCall
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindRatio:
		return "Ratio"
	case KindVariable:
		return "Variable"
	case KindUnary:
		return "Unary"
	case KindBinary:
		return "Binary"
	case KindCall:
		return "Call"
	}
	return "Kind(" + strconv.FormatInt(int64(k), 10) + ")"
}

// Expr is a node in an expression tree. Numeric leaves are exact integers,
// exact ratios, or floats; the other variants are symbolic. Exprs are
// treated as immutable once built, so subtrees may be shared.
type Expr struct {
	kind Kind
	// ival is the integer value, or the ratio numerator.
	ival int64
	// den is the ratio denominator, always positive and coprime to ival.
	den  int64
	fval float64
	// name is the variable or function name, or the operator symbol of a
	// Unary or Binary.
	name string
	args []*Expr
}

// Int returns an integer expression.
func Int(v int64) *Expr {
	return &Expr{kind: KindInteger, ival: v}
}

// Float returns a floating-point expression.
func Float(v float64) *Expr {
	return &Expr{kind: KindFloat, fval: v}
}

// Ratio returns the rational num/den reduced to lowest terms with the sign
// on the numerator. A whole result collapses to an integer expression.
// Ratio panics if den is zero.
func Ratio(num, den int64) *Expr {
	if den == 0 {
		panic("symexpr: ratio with zero denominator")
	}
	if num == 0 {
		return Int(0)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	num, den = num/g, den/g
	if den == 1 {
		return Int(num)
	}
	return &Expr{kind: KindRatio, ival: num, den: den}
}

// Var returns a variable expression.
func Var(name string) *Expr {
	return &Expr{kind: KindVariable, name: name}
}

// Unary returns the unary operator op applied to x.
func Unary(op string, x *Expr) *Expr {
	return &Expr{kind: KindUnary, name: op, args: []*Expr{x}}
}

// Binary returns the binary operator op applied to l and r.
func Binary(op string, l, r *Expr) *Expr {
	return &Expr{kind: KindBinary, name: op, args: []*Expr{l, r}}
}

// Call returns a call of the named function on args.
func Call(name string, args ...*Expr) *Expr {
	return &Expr{kind: KindCall, name: name, args: args}
}

// Kind reports the variant of the expression.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Int returns the value of an integer expression, or the numerator of a
// ratio.
func (e *Expr) Int() int64 {
	return e.ival
}

// Num returns the numerator of a ratio. The numerator carries the sign.
func (e *Expr) Num() int64 {
	return e.ival
}

// Den returns the denominator of a ratio. It is 1 for an integer.
func (e *Expr) Den() int64 {
	if e.kind == KindInteger {
		return 1
	}
	return e.den
}

// Float64 returns the value of a float expression.
func (e *Expr) Float64() float64 {
	return e.fval
}

// Name returns the name of a variable or call, or the operator symbol of a
// unary or binary expression.
func (e *Expr) Name() string {
	return e.name
}

// Args returns a copy of the expression's operand list.
func (e *Expr) Args() []*Expr {
	if e.args == nil {
		return nil
	}
	r := make([]*Expr, len(e.args))
	copy(r, e.args)
	return r
}

// isNumeric reports whether e is an integer, ratio, or float leaf.
func (e *Expr) isNumeric() bool {
	switch e.kind {
	case KindInteger, KindFloat, KindRatio:
		return true
	}
	return false
}

// asFloat converts a numeric leaf to float64. It panics on symbolic nodes.
func (e *Expr) asFloat() float64 {
	switch e.kind {
	case KindInteger:
		return float64(e.ival)
	case KindFloat:
		return e.fval
	case KindRatio:
		return float64(e.ival) / float64(e.den)
	}
	panic("symexpr: not a number: " + e.String())
}

// isZero reports whether e is an exact or floating-point zero. Reduced
// ratios are never zero.
func (e *Expr) isZero() bool {
	switch e.kind {
	case KindInteger:
		return e.ival == 0
	case KindFloat:
		return e.fval == 0
	}
	return false
}

// isOne reports whether e is an exact or floating-point one. Reduced ratios
// are never one.
func (e *Expr) isOne() bool {
	switch e.kind {
	case KindInteger:
		return e.ival == 1
	case KindFloat:
		return e.fval == 1
	}
	return false
}

// String renders the expression. Binary operations are always
// parenthesized, unary operations are prefix, and ratios print as num/den.
func (e *Expr) String() string {
	var b strings.Builder
	e.format(&b)
	return b.String()
}

func (e *Expr) format(b *strings.Builder) {
	switch e.kind {
	case KindInteger:
		b.WriteString(strconv.FormatInt(e.ival, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(e.fval, 'g', -1, 64))
	case KindRatio:
		b.WriteString(strconv.FormatInt(e.ival, 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(e.den, 10))
	case KindVariable:
		b.WriteString(e.name)
	case KindUnary:
		b.WriteString(e.name)
		e.args[0].format(b)
	case KindBinary:
		b.WriteByte('(')
		e.args[0].format(b)
		b.WriteString(e.name)
		e.args[1].format(b)
		b.WriteByte(')')
	case KindCall:
		b.WriteString(e.name)
		b.WriteByte('(')
		for i, a := range e.args {
			if i > 0 {
				b.WriteByte(',')
			}
			a.format(b)
		}
		b.WriteByte(')')
	default:
		panic("symexpr: invalid expression kind " + e.kind.String())
	}
}

// Vars returns the sorted names of the variables that appear in e, or nil
// if there are none. The index variable of a sum is included.
func (e *Expr) Vars() []string {
	set := map[string]bool{}
	e.freeVars(set)
	if len(set) == 0 {
		return nil
	}
	r := make([]string, 0, len(set))
	for v := range set {
		r = append(r, v)
	}
	sort.Strings(r)
	return r
}

func (e *Expr) freeVars(set map[string]bool) {
	if e.kind == KindVariable {
		set[e.name] = true
		return
	}
	for _, a := range e.args {
		a.freeVars(set)
	}
}
