//go:build go1.18
// +build go1.18

package symexpr_test

import (
	"testing"

	"github.com/evermath/symexpr"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("x")
	f.Add("1/0")
	f.Add("sum(x,x,1,3)+x")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		symexpr.Evaluate(s, symexpr.SetVar("x", symexpr.Int(2)))
	})
}
