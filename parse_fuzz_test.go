//go:build go1.18
// +build go1.18

package symexpr_test

import (
	"testing"

	"github.com/evermath/symexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("-3+4")
	f.Add("sum(x^2,x,1,3)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := symexpr.Parse(s)
		if err == nil && a == nil {
			t.Errorf("parsing %q gave no tree and no error", s)
		}
	})
}
