package symexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpnString(toks []token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
		if t.kind == tokenCall {
			b.WriteByte('/')
			b.WriteString(strings.Repeat("*", t.argc))
		}
	}
	return b.String()
}

func TestShunt(t *testing.T) {
	cases := map[string]struct {
		src string
		rpn string
	}{
		"num":          {"1", "1"},
		"add":          {"1+2", "1 2 +"},
		"left-assoc":   {"1-2-3", "1 2 - 3 -"},
		"precedence":   {"3+4*5", "3 4 5 * +"},
		"right-assoc":  {"2^3^2", "2 3 2 ^ ^"},
		"parens":       {"(3+4)*(2+3)", "3 4 + 2 3 + *"},
		"unary-first":  {"-3+4", "3 ~ 4 +"},
		"unary-pow":    {"2^-3", "2 3 ~ ^"},
		"double-neg":   {"1--2", "1 2 ~ -"},
		"neg-binds":    {"-3^2", "3 ~ 2 ^"},
		"factorial":    {"5!", "5 !"},
		"fact-mul":     {"2*3!", "2 3 ! *"},
		"call-one":     {"sin(1)", "1 sin/*"},
		"call-two":     {"log(8,2)", "8 2 log/**"},
		"call-nested":  {"max(min(1,2),3)", "1 2 min/** 3 max/**"},
		"call-expr":    {"sin(1+2)", "1 2 + sin/*"},
		"paren-ident":  {"(x)", "x"},
		"var-mul":      {"x*2", "x 2 *"},
		"deep-parens":  {"((1))", "1"},
		"call-in-expr": {"1+sin(x)*2", "1 x sin/* 2 * +"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := lexAll(c.src)
			require.NoError(t, err)
			rpn, err := shunt(toks)
			require.NoError(t, err)
			assert.Equal(t, c.rpn, rpnString(rpn))
		})
	}
}

func TestShuntZeroArgs(t *testing.T) {
	toks, err := lexAll("f()")
	require.NoError(t, err)
	rpn, err := shunt(toks)
	require.NoError(t, err)
	require.Len(t, rpn, 1)
	assert.Equal(t, tokenCall, rpn[0].kind)
	assert.Equal(t, "f", rpn[0].text)
	assert.Equal(t, 0, rpn[0].argc)
}

func TestShuntErrors(t *testing.T) {
	cases := map[string]struct {
		src string
		err error
	}{
		"close-extra":  {"1+2)", &BracketError{}},
		"open-extra":   {"(1+2", &BracketError{}},
		"sep-bare":     {"1,2", &SeparatorError{}},
		"sep-grouping": {"(1,2)", &SeparatorError{}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := lexAll(c.src)
			require.NoError(t, err)
			_, err = shunt(toks)
			require.Error(t, err)
			assert.IsType(t, c.err, err)
			var ie InputError
			require.ErrorAs(t, err, &ie)
			assert.Positive(t, ie.Pos())
		})
	}
}
