package symexpr

import (
	"math"
	"strconv"
)

// Mode selects the angle unit of the trigonometric functions.
type Mode int8

const (
	// Radians is the default mode.
	Radians Mode = iota
	// Degrees converts trigonometric arguments from degrees and inverse
	// results to degrees.
	Degrees
)

func (m Mode) String() string {
	switch m {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	}
	return "Mode(" + strconv.FormatInt(int64(m), 10) + ")"
}

// environ is the evaluation environment: bound variables and the angle
// mode.
type environ struct {
	mode Mode
	vars map[string]*Expr
}

// baseVars holds the default constant bindings. User variables shadow them.
var baseVars = map[string]*Expr{
	"pi": Float(math.Pi),
	"e":  Float(math.E),
}

// Evaluate parses src and evaluates it in one step. Undefined variables are
// not errors; they remain symbolic in the result.
func Evaluate(src string, opts ...EvalOption) (*Expr, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Eval(e, opts...)
}

// Eval evaluates a parsed expression tree. Callers that evaluate the same
// tree for many variable bindings parse once and call Eval per binding.
func Eval(e *Expr, opts ...EvalOption) (*Expr, error) {
	env := environ{vars: make(map[string]*Expr, len(baseVars)+len(opts))}
	for k, v := range baseVars {
		env.vars[k] = v
	}
	for _, o := range opts {
		env = o.evalOption(env)
	}
	return env.eval(e)
}

// eval reduces an expression bottom-up. Numeric leaves evaluate to
// themselves; a node whose operands all reduce to numbers computes, and any
// other node applies its operator's algebraic identities.
func (env *environ) eval(e *Expr) (*Expr, error) {
	switch e.kind {
	case KindInteger, KindFloat, KindRatio:
		return e, nil
	case KindVariable:
		if v := env.vars[e.name]; v != nil {
			return env.eval(v)
		}
		return e, nil
	case KindUnary, KindBinary:
		o := operators[e.name]
		if o == nil {
			return nil, &OperatorError{Operator: e.name}
		}
		args := make([]*Expr, len(e.args))
		numeric := true
		for i, a := range e.args {
			v, err := env.eval(a)
			if err != nil {
				return nil, err
			}
			args[i] = v
			numeric = numeric && v.isNumeric()
		}
		if numeric {
			return o.num(args)
		}
		return o.rewrite(e.name, args)
	case KindCall:
		f := builtins[e.name]
		if f == nil {
			return nil, &UnknownFuncError{Func: e.name}
		}
		// Parse checks arity, but trees can also be built directly.
		if !f.canCall(len(e.args)) {
			return nil, &CallError{Func: e.name, Len: len(e.args)}
		}
		// Calls receive their unevaluated argument trees. sum and diff
		// need the raw body and variable name.
		return f.call(env, e.args)
	}
	panic("symexpr: invalid expression kind " + e.kind.String())
}
