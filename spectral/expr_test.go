package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpr(t *testing.T) {
	// constants
	c := C(3)
	assert.True(t, near(c.Eval(7), 3))
	assert.False(t, c.IsZero())
	assert.True(t, C(0).IsZero())
	var zero Expr
	assert.True(t, zero.IsZero())
	assert.True(t, near(zero.Eval(1), 0))

	// coordinate functions
	f := Fun(func(x ...float64) float64 { return x[0] + 2*x[1] })
	assert.False(t, f.IsZero())
	assert.True(t, near(f.Eval(1, 2), 5))

	// Stretch substitutes coord -> l*coord before evaluation
	g := f.Stretch(10)
	assert.True(t, near(g.Eval(1, 2), 50))

	// scaling chains
	h := f.Mul(2).Div(4)
	assert.True(t, near(h.Eval(1, 2), 2.5))
	assert.True(t, near(C(8).Div(2).Eval(), 4))
	assert.True(t, near(C(8).Stretch(100).Eval(), 8))
}
