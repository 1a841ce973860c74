package coeff

import "math"

// Dual is a forward-mode differentiation-tracing coefficient: a real part X
// plus the gradient DX of X with respect to the variables seeded by
// Variables. Every arithmetic operation propagates both, so a scalar built
// from Duals carries its own derivative — no separate backward pass.
//
// A nil DX means "zero gradient"; gradients of different lengths combine by
// treating the missing tail as zeros. Both conventions exist so that the
// zero value Dual{} is a valid additive identity and constants never
// allocate gradient storage.
type Dual struct {
	X  float64
	DX []float64
}

var _ Value[Dual] = Dual{}

// Const returns a Dual carrying x with zero gradient.
func Const(x float64) Dual { return Dual{X: x} }

// Variables seeds one Dual per entry of xs, each carrying a unit basis
// gradient: the i-th result differentiates as ∂/∂xs[i].
func Variables(xs []float64) []Dual {
	vars := make([]Dual, len(xs))
	for i, x := range xs {
		dx := make([]float64, len(xs))
		dx[i] = 1
		vars[i] = Dual{X: x, DX: dx}
	}

	return vars
}

// Zero returns the additive identity.
func (d Dual) Zero() Dual { return Dual{} }

// One returns the multiplicative identity (gradient zero).
func (d Dual) One() Dual { return Dual{X: 1} }

// Add returns d + other, adding gradients elementwise.
func (d Dual) Add(other Dual) Dual {
	return Dual{X: d.X + other.X, DX: addScaled(d.DX, 1, other.DX, 1)}
}

// Scale returns d · x. d(x·f) = x·df.
func (d Dual) Scale(x float64) Dual {
	return Dual{X: d.X * x, DX: addScaled(d.DX, x, nil, 0)}
}

// MulSin returns d · sin(angle).
// d(f·sin(a)) = sin(a)·df + f·cos(a)·da.
func (d Dual) MulSin(angle Dual) Dual {
	s, c := math.Sin(angle.X), math.Cos(angle.X)

	return Dual{
		X:  d.X * s,
		DX: addScaled(d.DX, s, angle.DX, d.X*c),
	}
}

// MulCos returns d · cos(angle).
// d(f·cos(a)) = cos(a)·df - f·sin(a)·da.
func (d Dual) MulCos(angle Dual) Dual {
	s, c := math.Sin(angle.X), math.Cos(angle.X)

	return Dual{
		X:  d.X * c,
		DX: addScaled(d.DX, c, angle.DX, -d.X*s),
	}
}

// AbsGE reports |X| ≥ threshold. The gradient does not participate:
// truncation thresholds compare numeric magnitudes only.
func (d Dual) AbsGE(threshold float64) bool {
	return math.Abs(d.X) >= threshold
}

// Real unwraps the traced value.
func (d Dual) Real() float64 { return d.X }

// Gradient returns a copy of the gradient padded to n entries.
func (d Dual) Gradient(n int) []float64 {
	g := make([]float64, n)
	copy(g, d.DX)

	return g
}

// addScaled returns sa·a + sb·b elementwise, nil-aware: a nil slice is a
// zero gradient, and shorter slices are padded with zeros. Returns nil when
// both inputs are nil so constants stay allocation-free.
func addScaled(a []float64, sa float64, b []float64, sb float64) []float64 {
	if a == nil && b == nil {
		return nil
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := range a {
		out[i] = sa * a[i]
	}
	for i := range b {
		out[i] += sb * b[i]
	}

	return out
}
