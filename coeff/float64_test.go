package coeff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qprop/coeff"
)

// TestFloat64_Identities verifies the additive and multiplicative
// identities, including the zero-value-is-zero contract.
func TestFloat64_Identities(t *testing.T) {
	var zero coeff.Float64
	assert.Zero(t, zero.Real(), "zero value is the additive identity")
	assert.Equal(t, coeff.Float64(0), zero.Zero())
	assert.Equal(t, coeff.Float64(1), zero.One())

	c := coeff.Float64(0.7)
	assert.InDelta(t, 0.7, c.Add(zero).Real(), 1e-15)
}

// TestFloat64_Arithmetic verifies Add, Scale and the trig multipliers.
func TestFloat64_Arithmetic(t *testing.T) {
	c := coeff.Float64(2)
	theta := coeff.Float64(math.Pi / 6)

	assert.InDelta(t, 5.0, c.Add(3).Real(), 1e-15)
	assert.InDelta(t, -4.0, c.Scale(-2).Real(), 1e-15)
	assert.InDelta(t, 2*math.Sin(math.Pi/6), c.MulSin(theta).Real(), 1e-15)
	assert.InDelta(t, 2*math.Cos(math.Pi/6), c.MulCos(theta).Real(), 1e-15)
}

// TestFloat64_AbsGE verifies the magnitude predicate on both signs.
func TestFloat64_AbsGE(t *testing.T) {
	assert.True(t, coeff.Float64(-0.5).AbsGE(0.5))
	assert.True(t, coeff.Float64(0.5).AbsGE(0.1))
	assert.False(t, coeff.Float64(0.099).AbsGE(0.1))
}
