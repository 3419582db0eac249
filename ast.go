package symexpr

// Parse scans src and returns its expression tree. Errors from any stage
// implement InputError and carry the column of the offending token.
func Parse(src string) (*Expr, error) {
	toks, err := lexAll(src)
	if err != nil {
		return nil, err
	}
	rpn, err := shunt(toks)
	if err != nil {
		return nil, err
	}
	return build(rpn)
}

// build folds postfix tokens into an expression tree with a value stack.
func build(rpn []token) (*Expr, error) {
	var stack []*Expr
	for _, t := range rpn {
		switch t.kind {
		case tokenInt:
			stack = append(stack, Int(t.ival))
		case tokenFloat:
			stack = append(stack, Float(t.fval))
		case tokenIdent:
			stack = append(stack, Var(t.text))
		case tokenOp:
			o := operators[t.text]
			n := 2
			if o.unary {
				n = 1
			}
			if len(stack) < n {
				return nil, &UnderflowError{Col: t.pos, Op: t.text}
			}
			args := stack[len(stack)-n:]
			var e *Expr
			if o.unary {
				e = Unary(t.text, args[0])
			} else {
				e = Binary(t.text, args[0], args[1])
			}
			stack = append(stack[:len(stack)-n], e)
		case tokenCall:
			f := builtins[t.text]
			if f == nil {
				return nil, &UnknownFuncError{Col: t.pos, Func: t.text}
			}
			if !f.canCall(t.argc) {
				return nil, &CallError{Col: t.pos, Func: t.text, Len: t.argc}
			}
			if len(stack) < t.argc {
				return nil, &UnderflowError{Col: t.pos, Op: t.text}
			}
			args := make([]*Expr, t.argc)
			copy(args, stack[len(stack)-t.argc:])
			stack = append(stack[:len(stack)-t.argc], Call(t.text, args...))
		default:
			panic("symexpr: unexpected token in postfix stream: " + t.String())
		}
	}
	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return nil, &EmptyExpressionError{Col: 1}
	}
	col := 1
	if len(rpn) > 0 {
		col = rpn[len(rpn)-1].pos
	}
	return nil, &UnbalancedError{Col: col, Len: len(stack)}
}
