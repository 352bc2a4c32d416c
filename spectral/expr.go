package spectral

// Expr is a scalar field over physical coordinates: either a constant or a
// closure over position. It stands in for symbolic boundary/body-force
// expressions; coordinate substitutions become pure wrappers.
type Expr struct {
	Const float64
	Fn    func(x ...float64) float64
}

func C(v float64) Expr {
	return Expr{Const: v}
}

func Fun(f func(x ...float64) float64) Expr {
	return Expr{Fn: f}
}

func (e Expr) Eval(x ...float64) float64 {
	if e.Fn == nil {
		return e.Const
	}
	return e.Fn(x...)
}

func (e Expr) IsZero() bool {
	return e.Fn == nil && e.Const == 0
}

// Stretch substitutes every coordinate with l*coordinate, so that the
// expression can be evaluated on a rescaled domain. The substitution happens
// before evaluation, matching the order nondimensionalization requires.
func (e Expr) Stretch(l float64) Expr {
	if e.Fn == nil {
		return e
	}
	inner := e.Fn
	return Fun(func(x ...float64) float64 {
		xs := make([]float64, len(x))
		for i, v := range x {
			xs[i] = v * l
		}
		return inner(xs...)
	})
}

func (e Expr) Mul(s float64) Expr {
	if e.Fn == nil {
		return C(e.Const * s)
	}
	inner := e.Fn
	return Fun(func(x ...float64) float64 {
		return inner(x...) * s
	})
}

func (e Expr) Div(s float64) Expr {
	return e.Mul(1 / s)
}
