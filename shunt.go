package symexpr

// yard holds the state of infix to postfix conversion: the output queue,
// the operator stack, and a stack of argument counts for pending calls.
// Function-call markers live on the operator stack as tokenIdent.
type yard struct {
	out  []token
	ops  []token
	argc []int
}

// shunt converts lexed infix tokens to postfix order. Function calls become
// single tokenCall tokens carrying the name and argument count.
func shunt(toks []token) ([]token, error) {
	y := yard{}
	for i, t := range toks {
		switch t.kind {
		case tokenInt, tokenFloat, tokenIdent:
			y.out = append(y.out, t)
		case tokenOp:
			o := operators[t.text]
			if o == nil {
				return nil, &OperatorError{Col: t.pos, Operator: t.text}
			}
			for len(y.ops) > 0 {
				top := y.ops[len(y.ops)-1]
				if top.kind != tokenOp {
					break
				}
				p := operators[top.text]
				if o.right && o.prec >= p.prec || !o.right && o.prec > p.prec {
					break
				}
				y.popOp()
			}
			y.ops = append(y.ops, t)
		case tokenOpen:
			// An identifier directly before ( begins a call. The name moves
			// from the output queue to the operator stack as the marker.
			if n := len(y.out); n > 0 && y.out[n-1].kind == tokenIdent && i > 0 && toks[i-1].kind == tokenIdent {
				y.ops = append(y.ops, y.out[n-1])
				y.out = y.out[:n-1]
				y.argc = append(y.argc, 0)
			}
			y.ops = append(y.ops, t)
		case tokenSep:
			for {
				if len(y.ops) == 0 {
					return nil, &SeparatorError{Col: t.pos, Sep: t.text}
				}
				top := y.ops[len(y.ops)-1]
				if top.kind != tokenOp {
					break
				}
				y.popOp()
			}
			// The separator is legal only inside a call, where the open
			// bracket sits directly above the name marker.
			n := len(y.ops)
			if y.ops[n-1].kind != tokenOpen || n < 2 || y.ops[n-2].kind != tokenIdent {
				return nil, &SeparatorError{Col: t.pos, Sep: t.text}
			}
			y.argc[len(y.argc)-1]++
		case tokenClose:
			for {
				if len(y.ops) == 0 {
					return nil, &BracketError{Col: t.pos, Right: ")"}
				}
				top := y.ops[len(y.ops)-1]
				if top.kind != tokenOp {
					break
				}
				y.popOp()
			}
			open := y.ops[len(y.ops)-1]
			y.ops = y.ops[:len(y.ops)-1]
			if open.kind != tokenOpen {
				return nil, &BracketError{Col: t.pos, Right: ")"}
			}
			if n := len(y.ops); n > 0 && y.ops[n-1].kind == tokenIdent {
				name := y.ops[n-1]
				y.ops = y.ops[:n-1]
				argc := y.argc[len(y.argc)-1] + 1
				y.argc = y.argc[:len(y.argc)-1]
				// f() lexes as ident ( ) with nothing between the brackets.
				if toks[i-1].kind == tokenOpen {
					argc = 0
				}
				y.out = append(y.out, token{kind: tokenCall, text: name.text, pos: name.pos, argc: argc})
			}
		}
	}
	for len(y.ops) > 0 {
		top := y.ops[len(y.ops)-1]
		if top.kind != tokenOp {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		y.popOp()
	}
	return y.out, nil
}

func (y *yard) popOp() {
	n := len(y.ops)
	y.out = append(y.out, y.ops[n-1])
	y.ops = y.ops[:n-1]
}
