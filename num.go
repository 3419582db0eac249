package symexpr

import "math"

// gcd returns the greatest common divisor of |a| and |b|. gcd(a, 0) is |a|.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ratParts views an exact numeric leaf as a fraction.
func ratParts(e *Expr) (num, den int64) {
	if e.kind == KindRatio {
		return e.ival, e.den
	}
	return e.ival, 1
}

// numAdd adds two numeric leaves. The result is exact unless either operand
// is a float.
func numAdd(l, r *Expr) *Expr {
	if l.kind == KindFloat || r.kind == KindFloat {
		return Float(l.asFloat() + r.asFloat())
	}
	a, b := ratParts(l)
	c, d := ratParts(r)
	return Ratio(a*d+c*b, b*d)
}

func numSub(l, r *Expr) *Expr {
	if l.kind == KindFloat || r.kind == KindFloat {
		return Float(l.asFloat() - r.asFloat())
	}
	a, b := ratParts(l)
	c, d := ratParts(r)
	return Ratio(a*d-c*b, b*d)
}

func numMul(l, r *Expr) *Expr {
	if l.kind == KindFloat || r.kind == KindFloat {
		return Float(l.asFloat() * r.asFloat())
	}
	a, b := ratParts(l)
	c, d := ratParts(r)
	return Ratio(a*c, b*d)
}

// numDiv divides two numeric leaves. Division of exact values by exact zero
// is an error; float division follows IEEE-754.
func numDiv(l, r *Expr) (*Expr, error) {
	if l.kind == KindFloat || r.kind == KindFloat {
		return Float(l.asFloat() / r.asFloat()), nil
	}
	a, b := ratParts(l)
	c, d := ratParts(r)
	if c == 0 {
		return nil, &DivisionError{}
	}
	return Ratio(a*d, b*c), nil
}

// numPow raises l to the r power. Exponentiation always computes in
// floating point.
func numPow(l, r *Expr) *Expr {
	return Float(math.Pow(l.asFloat(), r.asFloat()))
}

// numNeg negates a numeric leaf, preserving its variant.
func numNeg(e *Expr) *Expr {
	switch e.kind {
	case KindInteger:
		return Int(-e.ival)
	case KindFloat:
		return Float(-e.fval)
	case KindRatio:
		return Ratio(-e.ival, e.den)
	}
	panic("symexpr: not a number: " + e.String())
}

// numFactorial computes n! iteratively. Only non-negative integers have a
// factorial.
func numFactorial(e *Expr) (*Expr, error) {
	if e.kind != KindInteger || e.ival < 0 {
		return nil, &FactorialError{X: e}
	}
	v := int64(1)
	for i := int64(2); i <= e.ival; i++ {
		v *= i
	}
	return Int(v), nil
}
