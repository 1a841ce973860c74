package coeff

import "math"

// Float64 is the plain real coefficient: ordinary float64 arithmetic with
// no tracing. The zero value is the additive identity.
type Float64 float64

var _ Value[Float64] = Float64(0)

// Zero returns 0.
func (f Float64) Zero() Float64 { return 0 }

// One returns 1.
func (f Float64) One() Float64 { return 1 }

// Add returns f + other.
func (f Float64) Add(other Float64) Float64 { return f + other }

// Scale returns f · x.
func (f Float64) Scale(x float64) Float64 { return f * Float64(x) }

// MulSin returns f · sin(angle).
func (f Float64) MulSin(angle Float64) Float64 {
	return f * Float64(math.Sin(float64(angle)))
}

// MulCos returns f · cos(angle).
func (f Float64) MulCos(angle Float64) Float64 {
	return f * Float64(math.Cos(float64(angle)))
}

// AbsGE reports |f| ≥ threshold.
func (f Float64) AbsGE(threshold float64) bool {
	return math.Abs(float64(f)) >= threshold
}

// Real returns f as a plain float64.
func (f Float64) Real() float64 { return float64(f) }
