package symexpr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evermath/symexpr"
)

func TestEvaluate(t *testing.T) {
	cases := map[string]struct {
		src  string
		opts []symexpr.EvalOption
		want string
	}{
		"neg-add":      {src: "-3+4", want: "1"},
		"precedence":   {src: "3+4*5", want: "23"},
		"exact-ratio":  {src: "2/4", want: "1/2"},
		"float-div":    {src: "2/4.", want: "0.5"},
		"parens":       {src: "(3+4)*(2+3)", want: "35"},
		"factorial":    {src: "5!", want: "120"},
		"ratio-add":    {src: "2/4 + 1/4", want: "3/4"},
		"ratio-whole":  {src: "1/2 + 1/2", want: "1"},
		"pow-float":    {src: "2^10", want: "1024"},
		"pow-right":    {src: "2^3^2", want: "512"},
		"neg-pow":      {src: "2^-3", want: "0.125"},
		"double-neg":   {src: "--3", want: "3"},
		"sum":          {src: "sum(x^2,x,1,3)", want: "14"},
		"sum-empty":    {src: "sum(x,x,3,1)", want: "0"},
		"diff":         {src: "diff(x^3+2*x, x)", want: "((3*(x^2))+2)"},
		"var-bound":    {src: "x*2", opts: []symexpr.EvalOption{symexpr.SetVar("x", symexpr.Int(3))}, want: "6"},
		"var-free":     {src: "y+1", want: "(y+1)"},
		"add-ident":    {src: "x+0", want: "x"},
		"mul-ident":    {src: "1*x", want: "x"},
		"mul-zero":     {src: "x*0", want: "0"},
		"div-ident":    {src: "x/1", want: "x"},
		"div-num-zero": {src: "0/x", want: "0"},
		"pow-zero":     {src: "x^0", want: "1"},
		"pow-one":      {src: "x^1", want: "x"},
		"pow-base-one": {src: "1^x", want: "1"},
		"neg-sym":      {src: "-x", want: "x"},
		"fact-sym":     {src: "x!", want: "x"},
		"sub-ident":    {src: "x-0", want: "x"},
		"shadow-const": {src: "pi", opts: []symexpr.EvalOption{symexpr.SetVar("pi", symexpr.Int(3))}, want: "3"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := symexpr.Evaluate(c.src, c.opts...)
			require.NoError(t, err)
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestEvaluateFloats(t *testing.T) {
	cases := map[string]struct {
		src  string
		opts []symexpr.EvalOption
		want float64
	}{
		"pi":          {src: "pi*2", want: 2 * math.Pi},
		"e":           {src: "e", want: math.E},
		"sin-rad":     {src: "sin(pi/2)", want: 1},
		"sin-deg":     {src: "sin(90)", opts: []symexpr.EvalOption{symexpr.WithMode(symexpr.Degrees)}, want: 1},
		"cos-deg":     {src: "cos(180)", opts: []symexpr.EvalOption{symexpr.WithMode(symexpr.Degrees)}, want: -1},
		"asin-rad":    {src: "asin(1)", want: math.Pi / 2},
		"asin-deg":    {src: "asin(1)", opts: []symexpr.EvalOption{symexpr.WithMode(symexpr.Degrees)}, want: 90},
		"atan2":       {src: "atan2(1, 1)", want: math.Pi / 4},
		"ln":          {src: "ln(e)", want: 1},
		"log":         {src: "log(2, 8)", want: 3},
		"log-ten":     {src: "log(10, 1000)", want: 3},
		"min":         {src: "min(2, 3)", want: 2},
		"max":         {src: "max(2, 3)", want: 3},
		"tan":         {src: "tan(0)", want: 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := symexpr.Evaluate(c.src, c.opts...)
			require.NoError(t, err)
			require.Equal(t, symexpr.KindFloat, r.Kind())
			assert.InDelta(t, c.want, r.Float64(), 1e-12)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := map[string]struct {
		src string
		err interface{}
	}{
		"div-zero":       {"1/0", new(*symexpr.DivisionError)},
		"div-zero-sym":   {"x/0", new(*symexpr.DivisionError)},
		"fact-neg":       {"(-1)!", new(*symexpr.FactorialError)},
		"fact-frac":      {"(1/2)!", new(*symexpr.FactorialError)},
		"fact-float":     {"1.5!", new(*symexpr.FactorialError)},
		"sum-bound":      {"sum(x,x,1.5,3)", new(*symexpr.BoundsError)},
		"sum-bound-sym":  {"sum(x,x,y,3)", new(*symexpr.BoundsError)},
		"sum-not-var":    {"sum(x,1,1,3)", new(*symexpr.ArgumentError)},
		"diff-not-var":   {"diff(x,1)", new(*symexpr.ArgumentError)},
		"diff-call-body": {"diff(sin(x),x)", new(*symexpr.DiffError)},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := symexpr.Evaluate(c.src)
			require.Error(t, err)
			require.ErrorAs(t, err, c.err)
		})
	}
}

func TestEvalReuse(t *testing.T) {
	a, err := symexpr.Parse("x^2 + x")
	require.NoError(t, err)
	for x, want := range map[int64]string{1: "2", 2: "6", 3: "12"} {
		r, err := symexpr.Eval(a, symexpr.SetVar("x", symexpr.Int(x)))
		require.NoError(t, err)
		assert.Equal(t, want, r.String())
	}
	// The tree itself stays unevaluated.
	r, err := symexpr.Eval(a)
	require.NoError(t, err)
	assert.Equal(t, "((x^2)+x)", r.String())
}

func TestEvalSetVars(t *testing.T) {
	r, err := symexpr.Evaluate("x+y", symexpr.SetVars(map[string]*symexpr.Expr{
		"x": symexpr.Int(1),
		"y": symexpr.Int(2),
	}))
	require.NoError(t, err)
	assert.Equal(t, "3", r.String())
}

func TestSumOuterEnv(t *testing.T) {
	// The summation variable shadows an outer binding inside the body and
	// is restored afterward.
	r, err := symexpr.Evaluate("sum(x,x,1,3)+x", symexpr.SetVar("x", symexpr.Int(100)))
	require.NoError(t, err)
	assert.Equal(t, "106", r.String())
}

func TestSumSymbolicBody(t *testing.T) {
	// A body with a free variable other than the index stays symbolic.
	r, err := symexpr.Evaluate("sum(y,x,1,2)")
	require.NoError(t, err)
	assert.Equal(t, "(y+y)", r.String())
}

func BenchmarkEval(b *testing.B) {
	b.Run("nums", func(b *testing.B) {
		b.ReportAllocs()
		a, err := symexpr.Parse("2+3*4^2")
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			symexpr.Eval(a)
		}
	})
	b.Run("vars", func(b *testing.B) {
		b.ReportAllocs()
		a, err := symexpr.Parse("x^2 + y*x + z")
		if err != nil {
			b.Fatal(err)
		}
		vars := symexpr.SetVars(map[string]*symexpr.Expr{
			"x": symexpr.Int(2), "y": symexpr.Int(3), "z": symexpr.Int(4),
		})
		for i := 0; i < b.N; i++ {
			symexpr.Eval(a, vars)
		}
	})
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		symexpr.Parse("sum(x^2 + 3*x, x, 1, 10) - sin(pi/4)")
	}
}
