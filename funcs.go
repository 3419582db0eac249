package symexpr

import "math"

// builtin is a callable function. min and max bound the accepted argument
// counts; call receives the unevaluated argument trees.
type builtin struct {
	name     string
	min, max int
	call     func(env *environ, args []*Expr) (*Expr, error)
}

func (f *builtin) canCall(n int) bool {
	return f.min <= n && n <= f.max
}

var builtins map[string]*builtin

func init() {
	fns := []*builtin{
		trigFn("sin", math.Sin),
		trigFn("cos", math.Cos),
		trigFn("tan", math.Tan),
		arcFn("asin", math.Asin),
		arcFn("acos", math.Acos),
		arcFn("atan", math.Atan),
		{name: "atan2", min: 2, max: 2, call: atan2Call},
		{name: "ln", min: 1, max: 1, call: lnCall},
		{name: "log", min: 2, max: 2, call: logCall},
		{name: "min", min: 2, max: 2, call: pairFn("min", math.Min)},
		{name: "max", min: 2, max: 2, call: pairFn("max", math.Max)},
		{name: "sum", min: 4, max: 4, call: sumCall},
		{name: "diff", min: 2, max: 2, call: diffCall},
	}
	builtins = make(map[string]*builtin, len(fns))
	for _, f := range fns {
		builtins[f.name] = f
	}
}

// factor converts an argument in the current mode to radians.
func (m Mode) factor() float64 {
	if m == Degrees {
		return math.Pi / 180
	}
	return 1
}

// invFactor converts a result in radians to the current mode.
func (m Mode) invFactor() float64 {
	if m == Degrees {
		return 180 / math.Pi
	}
	return 1
}

// trigFn wraps a radian-argument function of one variable. A symbolic
// argument rebuilds the call around the reduced operand.
func trigFn(name string, fn func(float64) float64) *builtin {
	return &builtin{name: name, min: 1, max: 1, call: func(env *environ, args []*Expr) (*Expr, error) {
		x, err := env.eval(args[0])
		if err != nil {
			return nil, err
		}
		if !x.isNumeric() {
			return Call(name, x), nil
		}
		return Float(fn(x.asFloat() * env.mode.factor())), nil
	}}
}

// arcFn wraps an inverse trigonometric function, converting its radian
// result to the current mode.
func arcFn(name string, fn func(float64) float64) *builtin {
	return &builtin{name: name, min: 1, max: 1, call: func(env *environ, args []*Expr) (*Expr, error) {
		x, err := env.eval(args[0])
		if err != nil {
			return nil, err
		}
		if !x.isNumeric() {
			return Call(name, x), nil
		}
		return Float(fn(x.asFloat()) * env.mode.invFactor()), nil
	}}
}

// pairFn wraps a float function of two variables with no angle conversion.
func pairFn(name string, fn func(float64, float64) float64) func(*environ, []*Expr) (*Expr, error) {
	return func(env *environ, args []*Expr) (*Expr, error) {
		x, err := env.eval(args[0])
		if err != nil {
			return nil, err
		}
		y, err := env.eval(args[1])
		if err != nil {
			return nil, err
		}
		if !x.isNumeric() || !y.isNumeric() {
			return Call(name, x, y), nil
		}
		return Float(fn(x.asFloat(), y.asFloat())), nil
	}
}

func atan2Call(env *environ, args []*Expr) (*Expr, error) {
	y, err := env.eval(args[0])
	if err != nil {
		return nil, err
	}
	x, err := env.eval(args[1])
	if err != nil {
		return nil, err
	}
	if !y.isNumeric() || !x.isNumeric() {
		return Call("atan2", y, x), nil
	}
	return Float(math.Atan2(y.asFloat(), x.asFloat()) * env.mode.invFactor()), nil
}

func lnCall(env *environ, args []*Expr) (*Expr, error) {
	x, err := env.eval(args[0])
	if err != nil {
		return nil, err
	}
	if !x.isNumeric() {
		return Call("ln", x), nil
	}
	return Float(math.Log(x.asFloat())), nil
}

// logCall computes log(base, x) as ln(x)/ln(base).
func logCall(env *environ, args []*Expr) (*Expr, error) {
	b, err := env.eval(args[0])
	if err != nil {
		return nil, err
	}
	x, err := env.eval(args[1])
	if err != nil {
		return nil, err
	}
	if !b.isNumeric() || !x.isNumeric() {
		return Call("log", b, x), nil
	}
	return Float(math.Log(x.asFloat()) / math.Log(b.asFloat())), nil
}

// sumCall evaluates sum(body, name, start, end): body summed with name
// bound to each integer from start to end inclusive. Both bounds must
// evaluate to exact integers. The accumulator starts at zero and each step
// reduces acc + value in the outer environment, so a symbolic body leaves a
// symbolic sum.
func sumCall(env *environ, args []*Expr) (*Expr, error) {
	if args[1].kind != KindVariable {
		return nil, &ArgumentError{Func: "sum", Arg: 2, Want: "variable"}
	}
	name := args[1].name
	lo, err := env.eval(args[2])
	if err != nil {
		return nil, err
	}
	if lo.kind != KindInteger {
		return nil, &BoundsError{Bound: lo}
	}
	hi, err := env.eval(args[3])
	if err != nil {
		return nil, err
	}
	if hi.kind != KindInteger {
		return nil, &BoundsError{Bound: hi}
	}
	acc := Int(0)
	for i := lo.ival; i <= hi.ival; i++ {
		inner := environ{mode: env.mode, vars: make(map[string]*Expr, len(env.vars)+1)}
		for k, v := range env.vars {
			inner.vars[k] = v
		}
		inner.vars[name] = Int(i)
		v, err := inner.eval(args[0])
		if err != nil {
			return nil, err
		}
		acc, err = env.eval(Binary("+", acc, v))
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// diffCall evaluates diff(body, name): the derivative of body with respect
// to name, reduced in the current environment.
func diffCall(env *environ, args []*Expr) (*Expr, error) {
	if args[1].kind != KindVariable {
		return nil, &ArgumentError{Func: "diff", Arg: 2, Want: "variable"}
	}
	d, err := differentiate(args[0], args[1].name)
	if err != nil {
		return nil, err
	}
	return env.eval(d)
}
