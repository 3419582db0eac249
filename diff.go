package symexpr

// differentiate returns the raw structural derivative of e with respect to
// the variable named v. The result is not simplified; the caller reduces it.
func differentiate(e *Expr, v string) (*Expr, error) {
	switch e.kind {
	case KindInteger, KindFloat, KindRatio:
		return Int(0), nil
	case KindVariable:
		if e.name == v {
			return Int(1), nil
		}
		return e, nil
	case KindBinary:
		u, w := e.args[0], e.args[1]
		du, err := differentiate(u, v)
		if err != nil {
			return nil, err
		}
		dw, err := differentiate(w, v)
		if err != nil {
			return nil, err
		}
		switch e.name {
		case "+", "-":
			return Binary(e.name, du, dw), nil
		case "*":
			return Binary("+", Binary("*", u, dw), Binary("*", w, du)), nil
		case "/":
			num := Binary("-", Binary("*", w, du), Binary("*", u, dw))
			return Binary("/", num, Binary("*", w, w)), nil
		case "^":
			// Power rule with the exponent treated as constant.
			return Binary("*", w, Binary("^", u, Binary("-", w, Int(1)))), nil
		}
	}
	return nil, &DiffError{Expr: e}
}
